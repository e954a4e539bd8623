// Package repository holds the todo store drivers (memory, sqlite, postgres)
// and the instrumentation wrapped around whichever one is configured.
package repository

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-spa-service/internal/domain"
	"github.com/jsamuelsen11/todo-spa-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-spa-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-spa-service/internal/ports"
)

const tracerName = "github.com/jsamuelsen11/todo-spa-service/internal/adapters/repository"

// Operation results recorded on metrics.
const (
	resultSuccess  = "success"
	resultNotFound = "not_found"
	resultInvalid  = "invalid"
	resultError    = "error"
)

var _ ports.TodoRepository = (*Instrumented)(nil)

// Instrumented records a span, a duration and a count for every call to
// the wrapped repository.
type Instrumented struct {
	next    ports.TodoRepository
	system  string
	metrics *telemetry.Metrics
	tracer  trace.Tracer
}

// Instrument wraps next. system names the backing store ("memory",
// "sqlite"...). metrics may be nil, in which case only spans are recorded.
func Instrument(next ports.TodoRepository, system string, metrics *telemetry.Metrics) *Instrumented {
	return &Instrumented{
		next:    next,
		system:  system,
		metrics: metrics,
		tracer:  otel.GetTracerProvider().Tracer(tracerName),
	}
}

func (r *Instrumented) List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	ctx, done := r.start(ctx, "list")
	todos, err := r.next.List(ctx, filter)
	done(err)
	return todos, err
}

func (r *Instrumented) FindByID(ctx context.Context, id int64) (*todo.Todo, error) {
	ctx, done := r.start(ctx, "find")
	t, err := r.next.FindByID(ctx, id)
	done(err)
	return t, err
}

func (r *Instrumented) Create(ctx context.Context, dto todo.CreateTodoDTO) (*todo.Todo, error) {
	ctx, done := r.start(ctx, "create")
	t, err := r.next.Create(ctx, dto)
	done(err)
	return t, err
}

func (r *Instrumented) Update(ctx context.Context, dto todo.UpdateTodoDTO) (*todo.Todo, error) {
	ctx, done := r.start(ctx, "update")
	t, err := r.next.Update(ctx, dto)
	done(err)
	return t, err
}

func (r *Instrumented) Delete(ctx context.Context, id int64) (*todo.Todo, error) {
	ctx, done := r.start(ctx, "delete")
	t, err := r.next.Delete(ctx, id)
	done(err)
	return t, err
}

// start opens the span for op and returns the function that closes it.
func (r *Instrumented) start(ctx context.Context, op string) (context.Context, func(error)) {
	begin := time.Now()
	ctx, span := r.tracer.Start(ctx, "todo.repository."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrDBSystem.String(r.system),
			telemetry.AttrOperation.String(op),
		),
	)

	return ctx, func(err error) {
		result := classify(err)
		// Not-found and invalid input are the caller's problem, not a
		// failed span.
		if result == resultError {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		if r.metrics == nil {
			return
		}
		attrs := metric.WithAttributes(
			telemetry.AttrDBSystem.String(r.system),
			telemetry.AttrOperation.String(op),
			telemetry.AttrResult.String(result),
		)
		r.metrics.RepoOperationDuration.Record(ctx, time.Since(begin).Seconds(), attrs)
		r.metrics.RepoOperationTotal.Add(ctx, 1, attrs)
	}
}

func classify(err error) string {
	switch {
	case err == nil:
		return resultSuccess
	case errors.Is(err, domain.ErrNotFound):
		return resultNotFound
	case errors.Is(err, domain.ErrValidation):
		return resultInvalid
	default:
		return resultError
	}
}
