package export

import (
	"fmt"
	"os"

	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/schema"
)

// DefaultFileName is the suggested name for a JSON export.
const DefaultFileName = "productivity-planner-export.json"

// ToJSON writes the full record, pretty-printed, to path. The file can be
// fed back through import.
func ToJSON(d model.AppData, path string) error {
	data, err := schema.Marshal(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
