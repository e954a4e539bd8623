package todo

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/todo-spa-service/internal/domain"
)

// CreateTodoDTO is the validated input for creating a todo.
type CreateTodoDTO struct {
	Text      string
	Completed bool
}

// UpdateTodoDTO is the validated input for updating a todo. ID is always a
// positive integer; nil pointers mean "do not change this field".
type UpdateTodoDTO struct {
	ID        int64
	Text      *string
	Completed *bool
}

// NewCreateTodoDTO builds a CreateTodoDTO from an untrusted payload such as a
// decoded JSON object or a parsed form. It returns a *domain.ValidationError
// when the payload does not have the required shape.
func NewCreateTodoDTO(raw map[string]any) (CreateTodoDTO, error) {
	fields := make(map[string]string)

	text, ok := raw["text"]
	if !ok || text == nil {
		fields["text"] = domain.MsgRequired
	} else if s, isString := text.(string); !isString {
		fields["text"] = "must be a string"
	} else if strings.TrimSpace(s) == "" {
		fields["text"] = domain.MsgRequired
	}

	completed, err := optionalBool(raw, "completed")
	if err != nil {
		fields["completed"] = err.Error()
	}

	if len(fields) > 0 {
		return CreateTodoDTO{}, &domain.ValidationError{Fields: fields}
	}

	dto := CreateTodoDTO{Text: text.(string)} //nolint:forcetypeassert // checked above
	if completed != nil {
		dto.Completed = *completed
	}
	return dto, nil
}

// NewUpdateTodoDTO builds an UpdateTodoDTO from an untrusted payload. The
// caller merges the route ID into raw under "id" before calling.
func NewUpdateTodoDTO(raw map[string]any) (UpdateTodoDTO, error) {
	fields := make(map[string]string)

	id, err := parseID(raw["id"])
	if err != nil {
		fields["id"] = err.Error()
	}

	var text *string
	if v, ok := raw["text"]; ok && v != nil {
		s, isString := v.(string)
		switch {
		case !isString:
			fields["text"] = "must be a string"
		case strings.TrimSpace(s) == "":
			fields["text"] = domain.MsgMustNotEmpty
		default:
			text = &s
		}
	}

	completed, err := optionalBool(raw, "completed")
	if err != nil {
		fields["completed"] = err.Error()
	}

	if len(fields) > 0 {
		return UpdateTodoDTO{}, &domain.ValidationError{Fields: fields}
	}
	return UpdateTodoDTO{ID: id, Text: text, Completed: completed}, nil
}

// ParseID converts a route parameter into a todo ID. Returns a
// *domain.ValidationError for anything but a positive integer.
func ParseID(raw string) (int64, error) {
	id, err := parseID(raw)
	if err != nil {
		return 0, domain.NewValidationError("id", err.Error())
	}
	return id, nil
}

var errInvalidID = errors.New("must be a positive integer")

func parseID(v any) (int64, error) {
	var id int64
	switch n := v.(type) {
	case int64:
		id = n
	case int:
		id = int64(n)
	case float64:
		if n != math.Trunc(n) || n >= math.MaxInt64 {
			return 0, errInvalidID
		}
		id = int64(n)
	case json.Number:
		parsed, err := n.Int64()
		if err != nil {
			return 0, errInvalidID
		}
		id = parsed
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, errInvalidID
		}
		id = parsed
	default:
		return 0, errInvalidID
	}
	if id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// optionalBool reads a boolean field that may arrive as a JSON bool or as a
// form string ("true", "false", "on", "1", "0").
func optionalBool(raw map[string]any, key string) (*bool, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil //nolint:nilnil // absent is not an error
	}

	switch b := v.(type) {
	case bool:
		return &b, nil
	case string:
		if strings.EqualFold(b, "on") {
			t := true
			return &t, nil
		}
		parsed, err := strconv.ParseBool(b)
		if err != nil {
			return nil, fmt.Errorf("must be a boolean, got %q", b)
		}
		return &parsed, nil
	default:
		return nil, errors.New("must be a boolean")
	}
}

// ParseCompleted parses the optional "completed" list query parameter.
func ParseCompleted(raw string) (*bool, error) {
	if raw == "" {
		return nil, nil //nolint:nilnil // absent is not an error
	}
	v, err := optionalBool(map[string]any{"completed": raw}, "completed")
	if err != nil {
		return nil, domain.NewValidationError("completed", err.Error())
	}
	return v, nil
}
