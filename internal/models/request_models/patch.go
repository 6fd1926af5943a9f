package request_models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	PatchOpAdd     = "add"
	PatchOpReplace = "replace"
	PatchOpRemove  = "remove"
	PatchOpTest    = "test"
)

// PatchOperation is a single JSON-Patch shaped edit against a PointOfInterestForUpdate.
type PatchOperation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// PatchDocument is applied in order; the first failing operation stops the apply.
type PatchDocument []PatchOperation

// PatchError reports the operation that could not be applied. Field is the
// target property name ("Name", "Description") or empty when the path is unknown.
type PatchError struct {
	Index   int
	Field   string
	Message string
}

func (e *PatchError) Error() string {
	return fmt.Sprintf("patch operation %d: %s", e.Index, e.Message)
}

// ApplyTo edits target in place. target is expected to be a copy; on error it
// may be partially modified.
func (d PatchDocument) ApplyTo(target *PointOfInterestForUpdate) error {
	for i, op := range d {
		field, ok := patchField(op.Path)
		if !ok {
			return &PatchError{Index: i, Message: fmt.Sprintf("the target location specified by path '%s' was not found", op.Path)}
		}

		var slot *string
		switch field {
		case "Name":
			slot = &target.Name
		case "Description":
			slot = &target.Description
		}

		switch strings.ToLower(op.Op) {
		case PatchOpAdd, PatchOpReplace:
			v, err := patchValue(op.Value)
			if err != nil {
				return &PatchError{Index: i, Field: field, Message: err.Error()}
			}
			*slot = v
		case PatchOpRemove:
			*slot = ""
		case PatchOpTest:
			v, err := patchValue(op.Value)
			if err != nil {
				return &PatchError{Index: i, Field: field, Message: err.Error()}
			}
			if *slot != v {
				return &PatchError{Index: i, Field: field, Message: fmt.Sprintf("the current value at path '%s' is not equal to the test value", op.Path)}
			}
		default:
			return &PatchError{Index: i, Field: field, Message: fmt.Sprintf("invalid operation '%s'", op.Op)}
		}
	}
	return nil
}

// patchField accepts a single-segment pointer such as "/name".
func patchField(path string) (string, bool) {
	name, ok := strings.CutPrefix(path, "/")
	if !ok || strings.Contains(name, "/") {
		return "", false
	}
	switch strings.ToLower(name) {
	case "name":
		return "Name", true
	case "description":
		return "Description", true
	}
	return "", false
}

func patchValue(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("the value is required")
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("the value '%s' is invalid for a string field", string(raw))
	}
	return v, nil
}
