package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/sadopc/planr/internal/model"
)

// ToCSV writes one row per task of every daily entry, oldest day first.
// Focus time assumes each completed pomodoro lasted the configured length.
func ToCSV(d model.AppData, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Date", "Rank", "Task", "Target", "Actual", "Focus", "Done", "Score"}); err != nil {
		return err
	}

	dates := make([]string, 0, len(d.Daily))
	for date := range d.Daily {
		dates = append(dates, date)
	}
	slices.Sort(dates)

	pomodoroSecs := int64(d.Preferences.PomodoroMinutes) * 60
	for _, date := range dates {
		e := d.Daily[date]
		score := ""
		if e.ProductivityScore != nil {
			score = strconv.Itoa(*e.ProductivityScore)
		}
		for i, t := range e.Tasks {
			row := []string{
				date,
				strconv.Itoa(i + 1),
				t.Text,
				strconv.Itoa(t.TargetPomodoros),
				strconv.Itoa(t.ActualPomodoros),
				formatDuration(int64(t.ActualPomodoros) * pomodoroSecs),
				strconv.FormatBool(t.Done),
				score,
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

func formatDuration(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
