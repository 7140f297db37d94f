package schema

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/planr/internal/model"
)

func validRecord(t *testing.T) map[string]any {
	t.Helper()
	d := model.NewAppData()
	d = d.WithEntry(model.NewDailyEntry("2024-01-01"))
	d = d.WithWeeklyPlan(model.NewWeeklyPlan("2024-01-01"))
	data, err := Marshal(d)
	require.NoError(t, err)
	var v map[string]any
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

func encode(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

// ==================== Validate ====================

func TestValidateAcceptsExport(t *testing.T) {
	assert.NoError(t, Validate(validRecord(t)))
}

func TestValidateReportsPaths(t *testing.T) {
	rec := validRecord(t)
	rec["preferences"].(map[string]any)["weekStartsOn"] = "friday"
	tasks := rec["daily"].(map[string]any)["2024-01-01"].(map[string]any)["tasks"].([]any)
	tasks[2].(map[string]any)["done"] = "yes"

	err := Validate(rec)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Issues, 2)
	assert.Equal(t, "preferences.weekStartsOn", verr.Issues[0].Path)
	assert.Contains(t, verr.Issues[0].Message, "Invalid enum value")
	assert.Equal(t, "daily.2024-01-01.tasks.2.done", verr.Issues[1].Path)
	assert.Equal(t, "Expected boolean, received string", verr.Issues[1].Message)
}

func TestValidateTaskCount(t *testing.T) {
	rec := validRecord(t)
	entry := rec["daily"].(map[string]any)["2024-01-01"].(map[string]any)
	entry["tasks"] = entry["tasks"].([]any)[:4]

	err := Validate(rec)
	require.Error(t, err)
	assert.Equal(t, "daily.2024-01-01.tasks: Array must contain exactly 5 element(s)", err.Error())
}

func TestValidateOptionalAndNullable(t *testing.T) {
	rec := validRecord(t)
	delete(rec["preferences"].(map[string]any), "theme")
	rec["timer"].(map[string]any)["endsAt"] = nil
	entry := rec["daily"].(map[string]any)["2024-01-01"].(map[string]any)
	entry["productivityScore"] = nil
	entry["tasks"].([]any)[0].(map[string]any)["targetPomodoros"] = nil
	plan := rec["weekly"].(map[string]any)["2024-01-01"].(map[string]any)
	delete(plan, "secondary")

	assert.NoError(t, Validate(rec))
}

func TestValidateNumberRules(t *testing.T) {
	tests := []struct {
		name string
		edit func(rec map[string]any)
		want string
	}{
		{
			"fractional actual",
			func(rec map[string]any) {
				rec["daily"].(map[string]any)["2024-01-01"].(map[string]any)["tasks"].([]any)[0].(map[string]any)["actualPomodoros"] = 1.5
			},
			"daily.2024-01-01.tasks.0.actualPomodoros: Expected integer, received float",
		},
		{
			"score above ten",
			func(rec map[string]any) {
				rec["daily"].(map[string]any)["2024-01-01"].(map[string]any)["productivityScore"] = 11.0
			},
			"daily.2024-01-01.productivityScore: Number must be less than or equal to 10",
		},
		{
			"zero pomodoro minutes",
			func(rec map[string]any) { rec["preferences"].(map[string]any)["pomodoroMinutes"] = 0.0 },
			"preferences.pomodoroMinutes: Number must be greater than 0",
		},
		{
			"task ref out of range",
			func(rec map[string]any) {
				rec["timer"].(map[string]any)["activeTaskRef"] = map[string]any{"date": "2024-01-01", "taskIndex": 5.0}
			},
			"timer.activeTaskRef.taskIndex: Number must be less than or equal to 4",
		},
		{
			"missing timer",
			func(rec map[string]any) { delete(rec, "timer") },
			"timer: Required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord(t)
			tt.edit(rec)
			err := Validate(rec)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestValidationErrorSummary(t *testing.T) {
	err := &ValidationError{Issues: []Issue{
		{Path: "", Message: "a"},
		{Path: "x", Message: "b"},
		{Path: "y", Message: "c"},
		{Path: "z", Message: "d"},
		{Path: "w", Message: "e"},
	}}
	assert.Equal(t, "(root): a; x: b; y: c (+2 more issues)", err.Error())
}

// ==================== ParseImport ====================

func TestParseImportFailures(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		sentinel error
		want     string
	}{
		{"syntax", "{not json", ErrInvalidJSON, "Import failed: Invalid JSON file"},
		{"array", "[1,2]", ErrNotObject, "Import failed: Expected a JSON object"},
		{"number", "42", ErrNotObject, "Import failed: Expected a JSON object"},
		{"null", "null", ErrNotObject, "Import failed: Expected a JSON object"},
		{"future version", `{"schemaVersion": 2}`, ErrUnsupportedVersion, "Import failed: Unsupported schemaVersion 2 (expected 1)"},
		{"missing version", `{}`, ErrUnsupportedVersion, "Import failed: Unsupported schemaVersion undefined (expected 1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseImport(tt.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestParseImportShapeFailure(t *testing.T) {
	rec := validRecord(t)
	delete(rec, "onboarding")
	delete(rec, "timer")
	rec["preferences"].(map[string]any)["soundEnabled"] = "loud"
	rec["weekly"].(map[string]any)["2024-01-01"].(map[string]any)["additional"] = []any{"a"}

	_, err := ParseImport(encode(t, rec))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidShape)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Issues, 4)
	assert.True(t, strings.HasPrefix(err.Error(), ImportFailedPrefix))
	assert.True(t, strings.HasSuffix(err.Error(), "(+1 more issues)"))
}

func TestParseImportDecodesDocument(t *testing.T) {
	rec := validRecord(t)
	rec["preferences"].(map[string]any)["theme"] = "midnight-editorial"
	rec["timer"].(map[string]any)["activeTaskRef"] = map[string]any{"date": "2024-01-01", "taskIndex": 3.0}

	doc, err := ParseImport(encode(t, rec))
	require.NoError(t, err)
	require.NotNil(t, doc.Preferences)
	assert.Equal(t, "midnight-editorial", *doc.Preferences.Theme)
	require.NotNil(t, doc.Timer.ActiveTaskRef)
	assert.Equal(t, 3.0, *doc.Timer.ActiveTaskRef.TaskIndex)
	assert.Len(t, doc.Daily["2024-01-01"].Tasks, model.TaskCount)
}

// ==================== Marshal ====================

func TestMarshalIndentsAndOmitsEmptyOptionals(t *testing.T) {
	data, err := Marshal(model.NewAppData())
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "{\n  \"schemaVersion\": 1,"))
	assert.NotContains(t, text, "lastImportedAt")
	assert.NotContains(t, text, "pledge")
	assert.Contains(t, text, `"endsAt": null`)
}

func TestMarshalPledgeActionsNeverNull(t *testing.T) {
	d := model.NewAppData()
	d.Pledge = &model.Pledge{CreatedAt: "2024-01-01T00:00:00.000Z"}
	data, err := Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ensureActions": []`)

	_, err = ParseImport(string(data))
	assert.NoError(t, err)
}

func TestFromAppDataKeepsNullScore(t *testing.T) {
	d := model.NewAppData()
	e := model.NewDailyEntry("2024-01-02")
	e.ProductivityScore = nil
	d = d.WithEntry(e)

	doc := FromAppData(d)
	assert.Nil(t, doc.Daily["2024-01-02"].ProductivityScore)
	assert.Equal(t, 1.0, *doc.Daily["2024-01-02"].Tasks[4].TargetPomodoros)
}

func TestDecodeErrorUnwrap(t *testing.T) {
	_, err := Decode([]byte("{"))
	var derr *DecodeError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, ErrInvalidJSON, derr.Kind)
}
