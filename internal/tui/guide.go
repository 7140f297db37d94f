package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/planr/internal/model"
)

const guideMarkdown = `# How to use planr

## Your most important task
- Your MIT is usually the uncomfortable task you’ve been avoiding.
- Ask: "What feels uncomfortable or procrastinated?"
- Ask: "If this were the only thing you did today, would you be satisfied?"
- Ask: "Will moving this forward make other tasks easier or unnecessary?"

## Writing tasks
- Make tasks concrete and actionable (start with a verb).
- If it feels big or vague, rewrite it as the smallest next step.
- If you can’t start in 30 seconds, the task is still ambiguous.

## Pomodoros
- Choose one task. Work for the full interval. No multitasking.
- No half sessions: if you abandon the work interval, reset and it doesn’t count.
- Take breaks for recovery, not for email/social.

## Breaks
- Stand up, stretch, water, fresh air.
- Avoid inputs that hijack attention (email/social/news).

## Tracking time
- Target = your best guess. Actual = the data.
- Get-it-done: finish the task regardless of time.
- Hit-the-target: commit to N sessions on a larger project even if not finished.

## Scoring the day
- Define what a ‘10’ looks like *today* and what a ‘1’ looks like.
- Score to learn patterns, not to chase perfection.
- Write one sentence: what helped or hurt today?
`

type guideModel struct {
	width    int
	height   int
	rendered string
	theme    model.Theme
	wrap     int
}

func newGuideModel() *guideModel {
	return &guideModel{}
}

func (g *guideModel) setSize(w, h int) {
	g.width = w
	g.height = h
}

// render caches the glamour output per width and theme.
func (g *guideModel) render(theme model.Theme) string {
	wrap := max(20, g.width-8)
	if g.rendered != "" && g.wrap == wrap && g.theme == theme {
		return g.rendered
	}
	style := "light"
	if theme == model.ThemeNocturne {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	out := guideMarkdown
	if err == nil {
		if s, err := r.Render(guideMarkdown); err == nil {
			out = strings.TrimSpace(s)
		}
	}
	g.rendered, g.wrap, g.theme = out, wrap, theme
	return out
}

func (g *guideModel) view(theme model.Theme) string {
	content := g.render(theme)
	if g.height > 4 {
		lines := strings.Split(content, "\n")
		if len(lines) > g.height-4 {
			content = strings.Join(lines[:g.height-4], "\n")
		}
	}
	return panelStyle.Width(g.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, content))
}
