package schema

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/sadopc/planr/internal/model"
)

// Issue is one structural violation found by Validate.
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	path := i.Path
	if path == "" {
		path = "(root)"
	}
	return path + ": " + i.Message
}

// ValidationError lists every violation found in a document.
type ValidationError struct {
	Issues []Issue
}

// maxReportedIssues bounds how many issues Error spells out.
const maxReportedIssues = 3

func (e *ValidationError) Error() string {
	shown := e.Issues
	if len(shown) > maxReportedIssues {
		shown = shown[:maxReportedIssues]
	}
	parts := make([]string, len(shown))
	for i, issue := range shown {
		parts[i] = issue.String()
	}
	msg := strings.Join(parts, "; ")
	if extra := len(e.Issues) - len(shown); extra > 0 {
		msg += fmt.Sprintf(" (+%d more issues)", extra)
	}
	return msg
}

// Validate checks a decoded JSON value (as produced by encoding/json into
// an any) against the persisted record shape. It returns nil or a
// *ValidationError carrying all issues in document order.
func Validate(v any) error {
	var w walker
	w.appData(v)
	if len(w.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: w.issues}
}

type walker struct {
	issues []Issue
}

func (w *walker) fail(path []string, format string, args ...any) {
	w.issues = append(w.issues, Issue{
		Path:    strings.Join(path, "."),
		Message: fmt.Sprintf(format, args...),
	})
}

func join(path []string, key string) []string {
	return append(slices.Clip(path), key)
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// field presence rules
type presence int

const (
	required presence = iota
	optional          // may be absent, not null
	nullable          // may be absent or null
)

// lookup fetches key from obj honoring p. ok is false when the walker
// should not descend further.
func (w *walker) lookup(obj map[string]any, key string, path []string, p presence) (any, bool) {
	v, present := obj[key]
	if !present {
		if p == required {
			w.fail(join(path, key), "Required")
		}
		return nil, false
	}
	if v == nil && p == nullable {
		return nil, false
	}
	return v, true
}

func (w *walker) expect(path []string, want string, v any) {
	if v == nil && want != "null" {
		w.fail(path, "Expected %s, received null", want)
		return
	}
	w.fail(path, "Expected %s, received %s", want, typeName(v))
}

func (w *walker) object(v any, path []string) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		w.expect(path, "object", v)
	}
	return m, ok
}

func (w *walker) str(obj map[string]any, key string, path []string, p presence) {
	v, ok := w.lookup(obj, key, path, p)
	if !ok {
		return
	}
	if _, isStr := v.(string); !isStr {
		w.expect(join(path, key), "string", v)
	}
}

func (w *walker) boolean(obj map[string]any, key string, path []string, p presence) {
	v, ok := w.lookup(obj, key, path, p)
	if !ok {
		return
	}
	if _, isBool := v.(bool); !isBool {
		w.expect(join(path, key), "boolean", v)
	}
}

func (w *walker) enum(obj map[string]any, key string, path []string, p presence, allowed ...string) {
	v, ok := w.lookup(obj, key, path, p)
	if !ok {
		return
	}
	s, isStr := v.(string)
	if isStr && slices.Contains(allowed, s) {
		return
	}
	quoted := make([]string, len(allowed))
	for i, a := range allowed {
		quoted[i] = "'" + a + "'"
	}
	received := typeName(v)
	if isStr {
		received = "'" + s + "'"
	}
	w.fail(join(path, key), "Invalid enum value. Expected %s, received %s", strings.Join(quoted, " | "), received)
}

// numRule constrains a number field.
type numRule struct {
	integer bool
	min     float64
	minOpen bool // min is exclusive
	hasMin  bool
	max     float64
	hasMax  bool
}

var (
	positive    = numRule{hasMin: true, min: 0, minOpen: true}
	nonNegative = numRule{hasMin: true, min: 0}
)

func (r numRule) whole() numRule {
	r.integer = true
	return r
}

func (w *walker) number(obj map[string]any, key string, path []string, p presence, r numRule) {
	v, ok := w.lookup(obj, key, path, p)
	if !ok {
		return
	}
	w.checkNumber(v, join(path, key), r)
}

func (w *walker) checkNumber(v any, path []string, r numRule) {
	n, isNum := v.(float64)
	if !isNum {
		w.expect(path, "number", v)
		return
	}
	if r.integer && n != math.Trunc(n) {
		w.fail(path, "Expected integer, received float")
	}
	if r.hasMin {
		switch {
		case r.minOpen && n <= r.min:
			w.fail(path, "Number must be greater than %s", fmtNum(r.min))
		case !r.minOpen && n < r.min:
			w.fail(path, "Number must be greater than or equal to %s", fmtNum(r.min))
		}
	}
	if r.hasMax && n > r.max {
		w.fail(path, "Number must be less than or equal to %s", fmtNum(r.max))
	}
}

func fmtNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// array checks that key holds an array and returns it; exact >= 0 demands
// that length, maxLen >= 0 caps it.
func (w *walker) array(obj map[string]any, key string, path []string, p presence, exact, maxLen int) ([]any, bool) {
	v, ok := w.lookup(obj, key, path, p)
	if !ok {
		return nil, false
	}
	at := join(path, key)
	arr, isArr := v.([]any)
	if !isArr {
		w.expect(at, "array", v)
		return nil, false
	}
	if exact >= 0 && len(arr) != exact {
		w.fail(at, "Array must contain exactly %d element(s)", exact)
	}
	if maxLen >= 0 && len(arr) > maxLen {
		w.fail(at, "Array must contain at most %d element(s)", maxLen)
	}
	return arr, true
}

func (w *walker) stringList(obj map[string]any, key string, path []string, p presence, exact, maxLen int) {
	arr, ok := w.array(obj, key, path, p, exact, maxLen)
	if !ok {
		return
	}
	for i, item := range arr {
		if _, isStr := item.(string); !isStr {
			w.expect(join(join(path, key), strconv.Itoa(i)), "string", item)
		}
	}
}

func (w *walker) record(obj map[string]any, key string, path []string, each func(v any, path []string)) {
	v, ok := w.lookup(obj, key, path, required)
	if !ok {
		return
	}
	at := join(path, key)
	m, isObj := w.object(v, at)
	if !isObj {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		each(m[k], join(at, k))
	}
}

func (w *walker) appData(v any) {
	obj, ok := w.object(v, nil)
	if !ok {
		return
	}
	if sv, present := obj["schemaVersion"]; !present {
		w.fail([]string{"schemaVersion"}, "Required")
	} else if n, isNum := sv.(float64); !isNum || n != model.SchemaVersion {
		w.fail([]string{"schemaVersion"}, "Invalid literal value, expected %d", model.SchemaVersion)
	}
	if p, ok := w.lookup(obj, "preferences", nil, required); ok {
		w.preferences(p, []string{"preferences"})
	}
	if o, ok := w.lookup(obj, "onboarding", nil, required); ok {
		w.onboarding(o, []string{"onboarding"})
	}
	w.record(obj, "daily", nil, w.dailyEntry)
	w.record(obj, "weekly", nil, w.weeklyPlan)
	if p, ok := w.lookup(obj, "pledge", nil, optional); ok {
		w.pledge(p, []string{"pledge"})
	}
	if t, ok := w.lookup(obj, "timer", nil, required); ok {
		w.timer(t, []string{"timer"})
	}
	w.str(obj, "lastImportedAt", nil, optional)
}

func (w *walker) preferences(v any, path []string) {
	obj, ok := w.object(v, path)
	if !ok {
		return
	}
	w.enum(obj, "theme", path, optional,
		string(model.ThemeNocturne), string(model.ThemeLaduree), string(model.ThemeLegacyMidnight))
	w.enum(obj, "weekStartsOn", path, required, string(model.WeekStartSunday), string(model.WeekStartMonday))
	w.number(obj, "pomodoroMinutes", path, required, positive)
	w.number(obj, "breakMinutes", path, required, positive)
	w.boolean(obj, "enforceTaskOrder", path, required)
	w.boolean(obj, "soundEnabled", path, required)
}

func (w *walker) onboarding(v any, path []string) {
	obj, ok := w.object(v, path)
	if !ok {
		return
	}
	w.str(obj, "name", path, required)
	w.boolean(obj, "onboardingCompleted", path, required)
	w.str(obj, "pledgeDraft", path, optional)
}

func (w *walker) dailyEntry(v any, path []string) {
	obj, ok := w.object(v, path)
	if !ok {
		return
	}
	w.str(obj, "date", path, required)
	if tasks, ok := w.array(obj, "tasks", path, required, model.TaskCount, -1); ok {
		for i, t := range tasks {
			w.task(t, join(join(path, "tasks"), strconv.Itoa(i)))
		}
	}
	w.str(obj, "notes", path, optional)
	w.number(obj, "productivityScore", path, nullable,
		numRule{hasMin: true, min: 1, hasMax: true, max: 10})
	w.str(obj, "productivityReflection", path, optional)
}

func (w *walker) task(v any, path []string) {
	obj, ok := w.object(v, path)
	if !ok {
		return
	}
	w.str(obj, "text", path, required)
	w.number(obj, "targetPomodoros", path, nullable, positive.whole())
	w.number(obj, "actualPomodoros", path, required, nonNegative.whole())
	w.boolean(obj, "done", path, required)
}

func (w *walker) weeklyPlan(v any, path []string) {
	obj, ok := w.object(v, path)
	if !ok {
		return
	}
	w.str(obj, "weekStart", path, required)
	w.stringList(obj, "mostImportant", path, optional, model.MostImportantCount, -1)
	w.stringList(obj, "secondary", path, optional, model.SecondaryCount, -1)
	w.stringList(obj, "additional", path, optional, model.AdditionalCount, -1)
	w.str(obj, "commitment", path, optional)
}

func (w *walker) pledge(v any, path []string) {
	obj, ok := w.object(v, path)
	if !ok {
		return
	}
	w.str(obj, "text", path, optional)
	w.str(obj, "signatureName", path, optional)
	w.str(obj, "startDate", path, optional)
	w.stringList(obj, "importantBecauseLines", path, optional, model.WhyLineCount, -1)
	w.str(obj, "reward", path, optional)
	w.str(obj, "consequence", path, optional)
	w.stringList(obj, "ensureActions", path, optional, -1, model.MaxEnsureActions)
	if list, ok := w.array(obj, "checklist", path, optional, model.PledgeDays, -1); ok {
		for i, item := range list {
			if _, isBool := item.(bool); !isBool {
				w.expect(join(join(path, "checklist"), strconv.Itoa(i)), "boolean", item)
			}
		}
	}
	w.str(obj, "createdAt", path, required)
	w.str(obj, "lastUpdatedAt", path, optional)
}

func (w *walker) timer(v any, path []string) {
	obj, ok := w.object(v, path)
	if !ok {
		return
	}
	w.enum(obj, "status", path, required,
		string(model.StatusIdle), string(model.StatusRunning), string(model.StatusPaused))
	w.enum(obj, "phase", path, required, string(model.PhaseWork), string(model.PhaseBreak))
	w.number(obj, "secondsLeft", path, required, nonNegative)
	w.number(obj, "endsAt", path, nullable, nonNegative.whole())
	w.number(obj, "workDurationSeconds", path, optional, positive)
	w.number(obj, "breakDurationSeconds", path, optional, positive)
	if ref, ok := w.lookup(obj, "activeTaskRef", path, optional); ok {
		at := join(path, "activeTaskRef")
		if refObj, ok := w.object(ref, at); ok {
			w.str(refObj, "date", at, required)
			w.number(refObj, "taskIndex", at, required,
				numRule{integer: true, hasMin: true, min: 0, hasMax: true, max: model.TaskCount - 1})
		}
	}
	w.boolean(obj, "uiOpen", path, required)
	w.str(obj, "lastError", path, optional)
}
