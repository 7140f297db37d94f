package model

import "time"

const SchemaVersion = 1

const (
	TaskCount          = 5
	MostImportantCount = 5
	SecondaryCount     = 6
	AdditionalCount    = 5
	WhyLineCount       = 3
	MaxEnsureActions   = 5
	PledgeDays         = 5
)

// Preference minute ranges accepted by the timer.
const (
	MinWorkMinutes  = 5
	MaxWorkMinutes  = 60
	MinBreakMinutes = 1
	MaxBreakMinutes = 30
)

type Theme string

const (
	ThemeLaduree  Theme = "laduree"
	ThemeNocturne Theme = "nocturne"
	// ThemeLegacyMidnight is accepted on load and rewritten to ThemeNocturne.
	ThemeLegacyMidnight Theme = "midnight-editorial"
)

type WeekStart string

const (
	WeekStartSunday WeekStart = "sunday"
	WeekStartMonday WeekStart = "monday"
)

type TimerStatus string

const (
	StatusIdle    TimerStatus = "idle"
	StatusRunning TimerStatus = "running"
	StatusPaused  TimerStatus = "paused"
)

type TimerPhase string

const (
	PhaseWork  TimerPhase = "work"
	PhaseBreak TimerPhase = "break"
)

type Preferences struct {
	Theme            Theme     `json:"theme"`
	WeekStartsOn     WeekStart `json:"weekStartsOn"`
	PomodoroMinutes  int       `json:"pomodoroMinutes"`
	BreakMinutes     int       `json:"breakMinutes"`
	EnforceTaskOrder bool      `json:"enforceTaskOrder"`
	SoundEnabled     bool      `json:"soundEnabled"`
}

type Task struct {
	Text            string `json:"text"`
	TargetPomodoros int    `json:"targetPomodoros"`
	ActualPomodoros int    `json:"actualPomodoros"`
	Done            bool   `json:"done"`
}

type DailyEntry struct {
	Date                   string          `json:"date"`
	Tasks                  [TaskCount]Task `json:"tasks"`
	Notes                  string          `json:"notes"`
	ProductivityScore      *int            `json:"productivityScore"`
	ProductivityReflection string          `json:"productivityReflection"`
}

type WeeklyPlan struct {
	WeekStart     string                     `json:"weekStart"`
	MostImportant [MostImportantCount]string `json:"mostImportant"`
	Secondary     [SecondaryCount]string     `json:"secondary"`
	Additional    [AdditionalCount]string    `json:"additional"`
	Commitment    string                     `json:"commitment"`
}

type Pledge struct {
	Text                  string               `json:"text"`
	SignatureName         string               `json:"signatureName"`
	StartDate             string               `json:"startDate"`
	ImportantBecauseLines [WhyLineCount]string `json:"importantBecauseLines"`
	Reward                string               `json:"reward"`
	Consequence           string               `json:"consequence"`
	EnsureActions         []string             `json:"ensureActions"`
	Checklist             [PledgeDays]bool     `json:"checklist"`
	CreatedAt             string               `json:"createdAt"`
	LastUpdatedAt         string               `json:"lastUpdatedAt,omitempty"`
}

// TaskRef points at one task slot of one daily entry.
type TaskRef struct {
	Date      string `json:"date"`
	TaskIndex int    `json:"taskIndex"`
}

type TimerState struct {
	Status               TimerStatus `json:"status"`
	Phase                TimerPhase  `json:"phase"`
	SecondsLeft          int         `json:"secondsLeft"`
	EndsAt               *int64      `json:"endsAt"` // unix milliseconds, set only while running
	WorkDurationSeconds  int         `json:"workDurationSeconds"`
	BreakDurationSeconds int         `json:"breakDurationSeconds"`
	ActiveTaskRef        *TaskRef    `json:"activeTaskRef,omitempty"`
	UIOpen               bool        `json:"uiOpen"`
	LastError            string      `json:"lastError,omitempty"`
}

type Onboarding struct {
	Name                string  `json:"name"`
	OnboardingCompleted bool    `json:"onboardingCompleted"`
	PledgeDraft         *string `json:"pledgeDraft,omitempty"`
}

// AppData is the persisted root of all planner state.
type AppData struct {
	SchemaVersion  int                   `json:"schemaVersion"`
	Preferences    Preferences           `json:"preferences"`
	Onboarding     Onboarding            `json:"onboarding"`
	Daily          map[string]DailyEntry `json:"daily"`
	Weekly         map[string]WeeklyPlan `json:"weekly"`
	Pledge         *Pledge               `json:"pledge,omitempty"`
	Timer          TimerState            `json:"timer"`
	LastImportedAt string                `json:"lastImportedAt,omitempty"`
}

// Timestamp formats t the way every stored timestamp is written.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
