package todo

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsamuelsen11/todo-spa-service/internal/domain"
)

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("err = nil, want validation error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestTodo_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "non-empty text passes", text: "buy milk"},
		{name: "empty text fails", text: "", wantErr: true},
		{name: "whitespace-only text fails", text: " \t\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			td := Todo{ID: 1, Text: tt.text}
			err := td.Validate()
			if tt.wantErr {
				requireValidationField(t, err, "text")
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestTodo_Apply(t *testing.T) {
	t.Parallel()

	td := Todo{ID: 1, Text: "buy milk"}

	td.Apply(UpdateTodoDTO{ID: 1, Completed: boolPtr(true)})
	if td.Text != "buy milk" || !td.Completed {
		t.Errorf("after completed update = %+v, want text kept and completed", td)
	}

	td.Apply(UpdateTodoDTO{ID: 1, Text: strPtr("buy oat milk")})
	if td.Text != "buy oat milk" || !td.Completed {
		t.Errorf("after text update = %+v, want new text and completed kept", td)
	}
}

func TestNotFound_Message(t *testing.T) {
	t.Parallel()

	err := NotFound(999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("errors.Is(err, ErrNotFound) = false, got %v", err)
	}
	if got, want := err.Error(), "Todo with id 999 not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestFilter_Matches(t *testing.T) {
	t.Parallel()

	done := Todo{ID: 1, Text: "a", Completed: true}
	open := Todo{ID: 2, Text: "b"}

	tests := []struct {
		name     string
		filter   Filter
		wantDone bool
		wantOpen bool
	}{
		{name: "zero filter matches all", filter: Filter{}, wantDone: true, wantOpen: true},
		{name: "completed only", filter: Filter{Completed: boolPtr(true)}, wantDone: true},
		{name: "open only", filter: Filter{Completed: boolPtr(false)}, wantOpen: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.filter.Matches(&done); got != tt.wantDone {
				t.Errorf("Matches(done) = %v, want %v", got, tt.wantDone)
			}
			if got := tt.filter.Matches(&open); got != tt.wantOpen {
				t.Errorf("Matches(open) = %v, want %v", got, tt.wantOpen)
			}
		})
	}
}

func TestNewCreateTodoDTO(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		raw           map[string]any
		wantField     string
		wantText      string
		wantCompleted bool
	}{
		{
			name:     "text only",
			raw:      map[string]any{"text": "buy milk"},
			wantText: "buy milk",
		},
		{
			name:          "json bool completed",
			raw:           map[string]any{"text": "buy milk", "completed": true},
			wantText:      "buy milk",
			wantCompleted: true,
		},
		{
			name:          "form checkbox completed",
			raw:           map[string]any{"text": "buy milk", "completed": "on"},
			wantText:      "buy milk",
			wantCompleted: true,
		},
		{
			name:     "form false completed",
			raw:      map[string]any{"text": "buy milk", "completed": "false"},
			wantText: "buy milk",
		},
		{
			name:      "missing text",
			raw:       map[string]any{},
			wantField: "text",
		},
		{
			name:      "nil payload",
			raw:       nil,
			wantField: "text",
		},
		{
			name:      "blank text",
			raw:       map[string]any{"text": "   "},
			wantField: "text",
		},
		{
			name:      "non-string text",
			raw:       map[string]any{"text": 42.0},
			wantField: "text",
		},
		{
			name:      "non-boolean completed",
			raw:       map[string]any{"text": "buy milk", "completed": "maybe"},
			wantField: "completed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewCreateTodoDTO(tt.raw)
			if tt.wantField != "" {
				requireValidationField(t, err, tt.wantField)
				return
			}
			if err != nil {
				t.Fatalf("NewCreateTodoDTO() error = %v", err)
			}
			if got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
			if got.Completed != tt.wantCompleted {
				t.Errorf("Completed = %v, want %v", got.Completed, tt.wantCompleted)
			}
		})
	}
}

func TestNewUpdateTodoDTO(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       map[string]any
		wantField string
		want      UpdateTodoDTO
	}{
		{
			name: "id only",
			raw:  map[string]any{"id": int64(3)},
			want: UpdateTodoDTO{ID: 3},
		},
		{
			name: "json number id and fields",
			raw:  map[string]any{"id": 3.0, "text": "walk dog", "completed": false},
			want: UpdateTodoDTO{ID: 3, Text: strPtr("walk dog"), Completed: boolPtr(false)},
		},
		{
			name: "string id from route",
			raw:  map[string]any{"id": "12", "completed": "true"},
			want: UpdateTodoDTO{ID: 12, Completed: boolPtr(true)},
		},
		{
			name: "json.Number id",
			raw:  map[string]any{"id": json.Number("5")},
			want: UpdateTodoDTO{ID: 5},
		},
		{
			name:      "missing id",
			raw:       map[string]any{"text": "x"},
			wantField: "id",
		},
		{
			name:      "zero id",
			raw:       map[string]any{"id": int64(0)},
			wantField: "id",
		},
		{
			name:      "fractional id",
			raw:       map[string]any{"id": 1.5},
			wantField: "id",
		},
		{
			name:      "id beyond int64",
			raw:       map[string]any{"id": float64(1 << 63)},
			wantField: "id",
		},
		{
			name:      "non-numeric id",
			raw:       map[string]any{"id": "abc"},
			wantField: "id",
		},
		{
			name:      "blank text",
			raw:       map[string]any{"id": int64(1), "text": ""},
			wantField: "text",
		},
		{
			name:      "bad completed",
			raw:       map[string]any{"id": int64(1), "completed": 7.0},
			wantField: "completed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewUpdateTodoDTO(tt.raw)
			if tt.wantField != "" {
				requireValidationField(t, err, tt.wantField)
				return
			}
			if err != nil {
				t.Fatalf("NewUpdateTodoDTO() error = %v", err)
			}
			if got.ID != tt.want.ID {
				t.Errorf("ID = %d, want %d", got.ID, tt.want.ID)
			}
			if (got.Text == nil) != (tt.want.Text == nil) || (got.Text != nil && *got.Text != *tt.want.Text) {
				t.Errorf("Text = %v, want %v", got.Text, tt.want.Text)
			}
			if (got.Completed == nil) != (tt.want.Completed == nil) ||
				(got.Completed != nil && *got.Completed != *tt.want.Completed) {
				t.Errorf("Completed = %v, want %v", got.Completed, tt.want.Completed)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	if id, err := ParseID("42"); err != nil || id != 42 {
		t.Errorf("ParseID(\"42\") = %d, %v; want 42, nil", id, err)
	}
	for _, raw := range []string{"", "abc", "-1", "0", "1.5"} {
		_, err := ParseID(raw)
		requireValidationField(t, err, "id")
	}
}

func TestParseCompleted(t *testing.T) {
	t.Parallel()

	got, err := ParseCompleted("")
	if err != nil || got != nil {
		t.Errorf("ParseCompleted(\"\") = %v, %v; want nil, nil", got, err)
	}

	got, err = ParseCompleted("true")
	if err != nil || got == nil || !*got {
		t.Errorf("ParseCompleted(\"true\") = %v, %v; want true", got, err)
	}

	_, err = ParseCompleted("nope")
	requireValidationField(t, err, "completed")
}
