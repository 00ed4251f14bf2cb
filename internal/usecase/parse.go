package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"proxmox-discord-relay/internal/domain/model"
)

// ParseNotification decodes a JSON object into a Notification. Absent fields
// keep their defaults. A falsy message (null, false, 0, "", [], {}) renders
// as empty; any other non-string message fails. A boolean priority counts as
// 0 or 1. Title must be a string and priority a number otherwise.
func ParseNotification(body []byte) (model.Notification, error) {
	n := model.NewNotification()

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return n, errors.Wrap(err, "decode json")
	}
	if fields == nil {
		return n, errors.New("payload is not a JSON object")
	}

	if err := stringField(fields, "title", &n.Title); err != nil {
		return n, err
	}
	if raw, ok := fields["message"]; ok && !falsy(raw) {
		if err := stringField(fields, "message", &n.Message); err != nil {
			return n, err
		}
	}
	if raw, ok := fields["priority"]; ok {
		switch p := raw.(type) {
		case float64:
			n.Priority = p
		case bool:
			if p {
				n.Priority = 1
			} else {
				n.Priority = 0
			}
		default:
			return n, errors.Errorf("field %q must be a number, got %s", "priority", typeName(raw))
		}
	}

	return n, nil
}

func stringField(fields map[string]any, key string, dst *string) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	s, isStr := raw.(string)
	if !isStr {
		return errors.Errorf("field %q must be a string, got %s", key, typeName(raw))
	}
	*dst = s
	return nil
}

func falsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
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
