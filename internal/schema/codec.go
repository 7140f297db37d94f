package schema

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sadopc/planr/internal/model"
)

// ImportFailedPrefix starts every user-facing import error message.
const ImportFailedPrefix = "Import failed: "

var (
	ErrInvalidJSON        = errors.New("invalid json")
	ErrNotObject          = errors.New("top-level value is not an object")
	ErrUnsupportedVersion = errors.New("unsupported schema version")
	ErrInvalidShape       = errors.New("invalid record shape")
)

// DecodeError is returned by Decode. Reason is the user-facing text; Kind is
// one of the Err* sentinels.
type DecodeError struct {
	Kind   error
	Reason string
	Err    error
}

func (e *DecodeError) Error() string { return e.Reason }

func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Decode parses raw JSON into a Document. The checks run in order and stop
// at the first failure: syntax, top-level object, schema version, shape.
func Decode(raw []byte) (Document, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return Document{}, &DecodeError{Kind: ErrInvalidJSON, Reason: "Invalid JSON file", Err: err}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return Document{}, &DecodeError{Kind: ErrNotObject, Reason: "Expected a JSON object"}
	}
	version, present := obj["schemaVersion"]
	if n, isNum := version.(float64); !isNum || n != model.SchemaVersion {
		return Document{}, &DecodeError{
			Kind:   ErrUnsupportedVersion,
			Reason: fmt.Sprintf("Unsupported schemaVersion %s (expected %d)", describe(version, present), model.SchemaVersion),
		}
	}
	if err := Validate(obj); err != nil {
		return Document{}, &DecodeError{Kind: ErrInvalidShape, Reason: err.Error(), Err: err}
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, &DecodeError{Kind: ErrInvalidShape, Reason: err.Error(), Err: err}
	}
	return doc, nil
}

func describe(v any, present bool) string {
	if !present {
		return "undefined"
	}
	switch x := v.(type) {
	case nil:
		return "null"
	case float64:
		return fmtNum(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

// ParseImport decodes user-supplied import text. Errors carry the
// "Import failed: " prefix and still match the Err* sentinels.
func ParseImport(text string) (Document, error) {
	doc, err := Decode([]byte(text))
	if err != nil {
		return Document{}, fmt.Errorf("%s%w", ImportFailedPrefix, err)
	}
	return doc, nil
}

// Marshal renders d as the pretty-printed export record.
func Marshal(d model.AppData) ([]byte, error) {
	data, err := json.MarshalIndent(FromAppData(d), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal app data: %w", err)
	}
	return data, nil
}
