package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/schema"
)

func sampleData() model.AppData {
	d := model.NewAppData()

	mon := model.NewDailyEntry("2024-01-01")
	mon.Tasks[0] = model.Task{Text: "write report", TargetPomodoros: 3, ActualPomodoros: 2, Done: true}
	mon.Tasks[1] = model.Task{Text: `reply to "Ana", Bo`, TargetPomodoros: 1, ActualPomodoros: 0}
	d = d.WithEntry(mon)

	tue := model.NewDailyEntry("2024-01-02")
	tue.ProductivityScore = nil
	d = d.WithEntry(tue)

	plan := model.NewWeeklyPlan("2024-01-01")
	plan.MostImportant[0] = "ship v1"
	plan.Commitment = "one thing at a time"
	d = d.WithWeeklyPlan(plan)

	d.Pledge = &model.Pledge{Text: "no phone before noon", Checklist: [model.PledgeDays]bool{true, true}, EnsureActions: []string{}}
	return d
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	return records
}

// ============================================================
// CSV
// ============================================================

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.csv")
	if err := ToCSV(sampleData(), path); err != nil {
		t.Fatalf("ToCSV: %v", err)
	}

	records := readCSV(t, path)
	// header + 5 tasks for each of 2 days
	if len(records) != 11 {
		t.Fatalf("expected 11 rows, got %d", len(records))
	}

	expectedHeader := []string{"Date", "Rank", "Task", "Target", "Actual", "Focus", "Done", "Score"}
	for i, h := range expectedHeader {
		if records[0][i] != h {
			t.Fatalf("header[%d] = %q, want %q", i, records[0][i], h)
		}
	}

	row := records[1]
	if row[0] != "2024-01-01" || row[1] != "1" || row[2] != "write report" {
		t.Fatalf("unexpected first row: %v", row)
	}
	if row[4] != "2" || row[5] != "00:50:00" || row[6] != "true" || row[7] != "5" {
		t.Fatalf("unexpected counters in first row: %v", row)
	}
	if records[2][2] != `reply to "Ana", Bo` {
		t.Fatalf("task text mangled: %q", records[2][2])
	}
	if records[6][0] != "2024-01-02" || records[6][7] != "" {
		t.Fatalf("expected second day with empty score, got %v", records[6])
	}
}

func TestToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := ToCSV(model.NewAppData(), path); err != nil {
		t.Fatal(err)
	}
	if records := readCSV(t, path); len(records) != 1 {
		t.Fatalf("expected 1 row (header only), got %d", len(records))
	}
}

func TestToCSVBadPath(t *testing.T) {
	if err := ToCSV(model.NewAppData(), "/nonexistent/dir/file.csv"); err == nil {
		t.Fatal("expected error for bad path")
	}
}

// ============================================================
// JSON
// ============================================================

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	want := sampleData()
	if err := ToJSON(want, path); err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "{\n  \"schemaVersion\": 1") {
		t.Fatalf("JSON should be pretty-printed, got %.40q", data)
	}

	doc, err := schema.ParseImport(string(data))
	if err != nil {
		t.Fatalf("exported file should import cleanly: %v", err)
	}
	if got := *doc.Daily["2024-01-01"].Tasks[0].Text; got != "write report" {
		t.Fatalf("task text = %q", got)
	}
}

func TestToJSONBadPath(t *testing.T) {
	if err := ToJSON(model.NewAppData(), "/nonexistent/dir/file.json"); err == nil {
		t.Fatal("expected error for bad path")
	}
}

// ============================================================
// PDF
// ============================================================

func TestWeeklyPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "week.pdf")
	if err := WeeklyPDF(sampleData(), "2024-01-01", path); err != nil {
		t.Fatalf("WeeklyPDF: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("not a PDF file: %.10q", data)
	}
}

func TestWeeklyPDFBadWeek(t *testing.T) {
	path := filepath.Join(t.TempDir(), "week.pdf")
	if err := WeeklyPDF(sampleData(), "last week", path); err == nil {
		t.Fatal("expected error for invalid week key")
	}
}

// ============================================================
// formatDuration (internal helper)
// ============================================================

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{0, "00:00:00"},
		{1, "00:00:01"},
		{60, "00:01:00"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{86400, "24:00:00"},
		{90061, "25:01:01"},
	}

	for _, tt := range tests {
		got := formatDuration(tt.secs)
		if got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
