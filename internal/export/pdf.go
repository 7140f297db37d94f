package export

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/sadopc/planr/internal/datekey"
	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/pledge"
)

// WeeklyPDF renders a printable sheet for the week starting at weekKey:
// the weekly plan, each day's tasks, and the pledge checklist.
func WeeklyPDF(d model.AppData, weekKey, path string) error {
	days, err := datekey.WeekDays(weekKey)
	if err != nil {
		return fmt.Errorf("weekly pdf: %w", err)
	}
	plan, ok := d.Weekly[weekKey]
	if !ok {
		plan = model.NewWeeklyPlan(weekKey)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Week of "+weekKey, true)
	pdf.AddPage()

	heading := func(text string) {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, tr(text))
		pdf.Ln(9)
		pdf.SetFont("Arial", "", 11)
	}
	line := func(text string) {
		pdf.MultiCell(0, 6, tr(text), "", "", false)
	}
	list := func(title string, items []string) {
		heading(title)
		for i, item := range items {
			if strings.TrimSpace(item) == "" {
				item = "________________________________"
			}
			line(fmt.Sprintf("%d. %s", i+1, item))
		}
		pdf.Ln(3)
	}

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, tr("Week of "+weekKey))
	pdf.Ln(14)

	list("Most important", plan.MostImportant[:])
	list("Secondary", plan.Secondary[:])
	list("Additional", plan.Additional[:])
	if plan.Commitment != "" {
		heading("Commitment")
		line(plan.Commitment)
		pdf.Ln(3)
	}

	heading("Daily tasks")
	for _, day := range days {
		e, ok := d.Daily[day]
		if !ok {
			continue
		}
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 7, day)
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 11)
		for i, t := range e.Tasks {
			if t.Text == "" {
				continue
			}
			box := "[ ]"
			if t.Done {
				box = "[x]"
			}
			line(fmt.Sprintf("%s %d. %s (%d/%d)", box, i+1, t.Text, t.ActualPomodoros, t.TargetPomodoros))
		}
	}

	if d.Pledge != nil {
		pdf.Ln(4)
		heading("Pledge")
		line(d.Pledge.Text)
		var marks []string
		for i, done := range d.Pledge.Checklist {
			mark := "[ ]"
			if done {
				mark = "[x]"
			}
			marks = append(marks, fmt.Sprintf("%s Day %d", mark, i+1))
		}
		line(strings.Join(marks, "   "))
		if pledge.IsComplete(d.Pledge) {
			line("Completed.")
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf file: %w", err)
	}
	return nil
}
