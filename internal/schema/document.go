// Package schema describes the persisted and exported JSON record: its
// loose wire form, the structural validator, and the import/export codec.
package schema

import (
	"slices"

	"github.com/sadopc/planr/internal/model"
)

// Document is the wire form of model.AppData. Every field is optional so
// that partial and legacy records decode; normalize turns a Document into
// a well-formed AppData.
type Document struct {
	SchemaVersion  *float64                 `json:"schemaVersion"`
	Preferences    *PreferencesDoc          `json:"preferences"`
	Onboarding     *OnboardingDoc           `json:"onboarding"`
	Daily          map[string]DailyEntryDoc `json:"daily"`
	Weekly         map[string]WeeklyPlanDoc `json:"weekly"`
	Pledge         *PledgeDoc               `json:"pledge,omitempty"`
	Timer          *TimerDoc                `json:"timer"`
	LastImportedAt *string                  `json:"lastImportedAt,omitempty"`
}

type PreferencesDoc struct {
	Theme            *string  `json:"theme"`
	WeekStartsOn     *string  `json:"weekStartsOn"`
	PomodoroMinutes  *float64 `json:"pomodoroMinutes"`
	BreakMinutes     *float64 `json:"breakMinutes"`
	EnforceTaskOrder *bool    `json:"enforceTaskOrder"`
	SoundEnabled     *bool    `json:"soundEnabled"`
}

type OnboardingDoc struct {
	Name                *string `json:"name"`
	OnboardingCompleted *bool   `json:"onboardingCompleted"`
	PledgeDraft         *string `json:"pledgeDraft,omitempty"`
}

type TaskDoc struct {
	Text            *string  `json:"text"`
	TargetPomodoros *float64 `json:"targetPomodoros"`
	ActualPomodoros *float64 `json:"actualPomodoros"`
	Done            *bool    `json:"done"`
}

type DailyEntryDoc struct {
	Date                   *string   `json:"date"`
	Tasks                  []TaskDoc `json:"tasks"`
	Notes                  *string   `json:"notes"`
	ProductivityScore      *float64  `json:"productivityScore"`
	ProductivityReflection *string   `json:"productivityReflection"`
}

type WeeklyPlanDoc struct {
	WeekStart     *string  `json:"weekStart"`
	MostImportant []string `json:"mostImportant"`
	Secondary     []string `json:"secondary"`
	Additional    []string `json:"additional"`
	Commitment    *string  `json:"commitment"`
}

type PledgeDoc struct {
	Text                  *string  `json:"text"`
	SignatureName         *string  `json:"signatureName"`
	StartDate             *string  `json:"startDate"`
	ImportantBecauseLines []string `json:"importantBecauseLines"`
	Reward                *string  `json:"reward"`
	Consequence           *string  `json:"consequence"`
	EnsureActions         []string `json:"ensureActions"`
	Checklist             []bool   `json:"checklist"`
	CreatedAt             *string  `json:"createdAt"`
	LastUpdatedAt         *string  `json:"lastUpdatedAt,omitempty"`
}

type TaskRefDoc struct {
	Date      *string  `json:"date"`
	TaskIndex *float64 `json:"taskIndex"`
}

type TimerDoc struct {
	Status               *string     `json:"status"`
	Phase                *string     `json:"phase"`
	SecondsLeft          *float64    `json:"secondsLeft"`
	EndsAt               *float64    `json:"endsAt"`
	WorkDurationSeconds  *float64    `json:"workDurationSeconds"`
	BreakDurationSeconds *float64    `json:"breakDurationSeconds"`
	ActiveTaskRef        *TaskRefDoc `json:"activeTaskRef,omitempty"`
	UIOpen               *bool       `json:"uiOpen"`
	LastError            *string     `json:"lastError,omitempty"`
}

func ptr[T any](v T) *T { return &v }

func num(v int) *float64 { return ptr(float64(v)) }

// FromAppData converts a well-formed AppData into its wire form without
// losing information.
func FromAppData(d model.AppData) Document {
	doc := Document{
		SchemaVersion: num(d.SchemaVersion),
		Preferences: &PreferencesDoc{
			Theme:            ptr(string(d.Preferences.Theme)),
			WeekStartsOn:     ptr(string(d.Preferences.WeekStartsOn)),
			PomodoroMinutes:  num(d.Preferences.PomodoroMinutes),
			BreakMinutes:     num(d.Preferences.BreakMinutes),
			EnforceTaskOrder: ptr(d.Preferences.EnforceTaskOrder),
			SoundEnabled:     ptr(d.Preferences.SoundEnabled),
		},
		Onboarding: &OnboardingDoc{
			Name:                ptr(d.Onboarding.Name),
			OnboardingCompleted: ptr(d.Onboarding.OnboardingCompleted),
		},
		Daily:  make(map[string]DailyEntryDoc, len(d.Daily)),
		Weekly: make(map[string]WeeklyPlanDoc, len(d.Weekly)),
		Timer:  timerDoc(d.Timer),
	}
	if d.Onboarding.PledgeDraft != nil {
		doc.Onboarding.PledgeDraft = ptr(*d.Onboarding.PledgeDraft)
	}
	for k, e := range d.Daily {
		doc.Daily[k] = dailyDoc(e)
	}
	for k, p := range d.Weekly {
		doc.Weekly[k] = WeeklyPlanDoc{
			WeekStart:     ptr(p.WeekStart),
			MostImportant: slices.Clone(p.MostImportant[:]),
			Secondary:     slices.Clone(p.Secondary[:]),
			Additional:    slices.Clone(p.Additional[:]),
			Commitment:    ptr(p.Commitment),
		}
	}
	if d.Pledge != nil {
		doc.Pledge = pledgeDoc(*d.Pledge)
	}
	if d.LastImportedAt != "" {
		doc.LastImportedAt = ptr(d.LastImportedAt)
	}
	return doc
}

func dailyDoc(e model.DailyEntry) DailyEntryDoc {
	doc := DailyEntryDoc{
		Date:                   ptr(e.Date),
		Tasks:                  make([]TaskDoc, len(e.Tasks)),
		Notes:                  ptr(e.Notes),
		ProductivityReflection: ptr(e.ProductivityReflection),
	}
	for i, t := range e.Tasks {
		doc.Tasks[i] = TaskDoc{
			Text:            ptr(t.Text),
			TargetPomodoros: num(t.TargetPomodoros),
			ActualPomodoros: num(t.ActualPomodoros),
			Done:            ptr(t.Done),
		}
	}
	if e.ProductivityScore != nil {
		doc.ProductivityScore = num(*e.ProductivityScore)
	}
	return doc
}

func pledgeDoc(p model.Pledge) *PledgeDoc {
	doc := &PledgeDoc{
		Text:                  ptr(p.Text),
		SignatureName:         ptr(p.SignatureName),
		StartDate:             ptr(p.StartDate),
		ImportantBecauseLines: slices.Clone(p.ImportantBecauseLines[:]),
		Reward:                ptr(p.Reward),
		Consequence:           ptr(p.Consequence),
		EnsureActions:         append([]string{}, p.EnsureActions...),
		Checklist:             slices.Clone(p.Checklist[:]),
		CreatedAt:             ptr(p.CreatedAt),
	}
	if p.LastUpdatedAt != "" {
		doc.LastUpdatedAt = ptr(p.LastUpdatedAt)
	}
	return doc
}

func timerDoc(t model.TimerState) *TimerDoc {
	doc := &TimerDoc{
		Status:               ptr(string(t.Status)),
		Phase:                ptr(string(t.Phase)),
		SecondsLeft:          num(t.SecondsLeft),
		WorkDurationSeconds:  num(t.WorkDurationSeconds),
		BreakDurationSeconds: num(t.BreakDurationSeconds),
		UIOpen:               ptr(t.UIOpen),
	}
	if t.EndsAt != nil {
		doc.EndsAt = ptr(float64(*t.EndsAt))
	}
	if t.ActiveTaskRef != nil {
		doc.ActiveTaskRef = &TaskRefDoc{
			Date:      ptr(t.ActiveTaskRef.Date),
			TaskIndex: num(t.ActiveTaskRef.TaskIndex),
		}
	}
	if t.LastError != "" {
		doc.LastError = ptr(t.LastError)
	}
	return doc
}
