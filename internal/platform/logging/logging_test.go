package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todo-spa-service/internal/platform/logging"
)

func TestNew_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   []string
	}{
		{format: "json", want: []string{`"level":"INFO"`, `"msg":"hello"`}},
		{format: "text", want: []string{"level=INFO", "msg=hello"}},
		{format: "TEXT", want: []string{"level=INFO"}},
		{format: "unknown", want: []string{`"msg":"hello"`}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("hello")
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output = %q, want substring %q", buf.String(), w)
				}
			}
		})
	}
}

func TestNew_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level     string
		logAt     slog.Level
		wantEmpty bool
	}{
		{level: "debug", logAt: slog.LevelDebug},
		{level: "DEBUG", logAt: slog.LevelDebug},
		{level: "info", logAt: slog.LevelDebug, wantEmpty: true},
		{level: "warn", logAt: slog.LevelInfo, wantEmpty: true},
		{level: "error", logAt: slog.LevelWarn, wantEmpty: true},
		{level: "error", logAt: slog.LevelError},
		{level: "bogus", logAt: slog.LevelInfo},
		{level: "bogus", logAt: slog.LevelDebug, wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.logAt.String(), func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logging.New(tt.level, "json", &buf).Log(context.Background(), tt.logAt, "msg")
			if got := buf.Len() == 0; got != tt.wantEmpty {
				t.Errorf("empty output = %v, want %v (output %q)", got, tt.wantEmpty, buf.String())
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debug, info bytes.Buffer
	logging.New("debug", "json", &debug).Info("x")
	logging.New("info", "json", &info).Info("x")

	if !strings.Contains(debug.String(), `"source"`) {
		t.Errorf("debug output = %q, want source", debug.String())
	}
	if strings.Contains(info.String(), `"source"`) {
		t.Errorf("info output = %q, want no source", info.String())
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext(empty) is not slog.Default()")
	}

	first := slog.New(slog.DiscardHandler)
	second := slog.New(slog.DiscardHandler)
	ctx := logging.WithLogger(context.Background(), first)
	ctx = logging.WithLogger(ctx, second)

	if got := logging.FromContext(ctx); got != second {
		t.Error("FromContext() did not return the most recently stored logger")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization field", attr: slog.String("authorization", "Bearer abc.def"), secret: "abc.def"},
		{name: "cookie field", attr: slog.String("cookie", "session=42"), secret: "session=42"},
		{name: "password field", attr: slog.String("password", "hunter2"), secret: "hunter2"},
		{name: "dsn field", attr: slog.String("dsn", "postgres://todo:hunter2@db/todo"), secret: "hunter2"},
		{name: "bearer value", attr: slog.String("raw", "Bearer eyJhbGciOiJSUzI1NiJ9"), secret: "eyJhbGciOiJSUzI1NiJ9"},
		{name: "dsn in error text", attr: slog.String("error", "dial postgres://todo:hunter2@db:5432/todo: refused"), secret: "hunter2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output = %q, want %q redacted", out, tt.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output = %q, missing [REDACTED]", out)
			}
		})
	}
}

func TestNew_KeepsOrdinaryFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("todo created",
		slog.Int64("todo_id", 42),
		slog.String("path", "/api/todos"),
		slog.String("version", "1.2.3"),
	)

	for _, want := range []string{`"todo_id":42`, `"/api/todos"`, `"1.2.3"`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
	}
}
