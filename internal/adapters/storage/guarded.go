// Package storage holds the task-list store adapters and the Guarded
// decorator that instruments whichever one is configured.
//
// Every call through Guarded passes the same pipeline:
//
//	Circuit Breaker → Rate Limiter → OTEL Span → Repository
//
// Construction:
//
//	repo := storage.NewGuarded(mongoStore, "mongodb", &cfg.Store, metrics, logger)
//
// Failed operations are never retried. Reference errors, rejected
// arguments and caller cancellations do not count against the breaker.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/usertask-service/internal/domain"
	"github.com/jsamuelsen11/usertask-service/internal/domain/tasklist"
	"github.com/jsamuelsen11/usertask-service/internal/domain/user"
	"github.com/jsamuelsen11/usertask-service/internal/platform/config"
	"github.com/jsamuelsen11/usertask-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/usertask-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TaskListRepository = (*Guarded)(nil)
	_ ports.HealthChecker      = (*Guarded)(nil)
)

// Span attribute keys for the ids an operation touches.
var (
	attrTaskListID = attribute.Key("app.task_list_id")
	attrUserID     = attribute.Key("app.user_id")
)

// Guarded wraps a ports.TaskListRepository with a circuit breaker, an
// optional rate limiter, tracing spans, metrics and failure logging.
type Guarded struct {
	next    ports.TaskListRepository
	system  string
	breaker *gobreaker.CircuitBreaker[any]
	limiter *rate.Limiter // nil when rate limiting is disabled
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewGuarded wraps next. The system names the backing store in spans and
// metrics (e.g. "mongodb", "memory"). If metrics is nil, metric recording
// is skipped.
func NewGuarded(next ports.TaskListRepository, system string, cfg *config.StoreConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Guarded {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        system,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		IsSuccessful: countsAsSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Guarded{
		next:    next,
		system:  system,
		breaker: cb,
		limiter: limiter,
		metrics: metrics,
		logger:  logger,
	}
}

// CreateTaskList implements ports.TaskListRepository.
func (g *Guarded) CreateTaskList(ctx context.Context, list *tasklist.TaskList) (*tasklist.TaskList, error) {
	return execute(ctx, g, "CreateTaskList", func(ctx context.Context) (*tasklist.TaskList, error) {
		return g.next.CreateTaskList(ctx, list)
	}, attrUserID.String(list.OwnerID))
}

// UpdateTaskList implements ports.TaskListRepository.
func (g *Guarded) UpdateTaskList(ctx context.Context, list *tasklist.TaskList) (*tasklist.TaskList, error) {
	return execute(ctx, g, "UpdateTaskList", func(ctx context.Context) (*tasklist.TaskList, error) {
		return g.next.UpdateTaskList(ctx, list)
	}, attrTaskListID.String(list.ID))
}

// DeleteTaskList implements ports.TaskListRepository.
func (g *Guarded) DeleteTaskList(ctx context.Context, id string) error {
	_, err := execute(ctx, g, "DeleteTaskList", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, g.next.DeleteTaskList(ctx, id)
	}, attrTaskListID.String(id))
	return err
}

// GetTaskList implements ports.TaskListRepository.
func (g *Guarded) GetTaskList(ctx context.Context, id string) (*tasklist.TaskList, error) {
	return execute(ctx, g, "GetTaskList", func(ctx context.Context) (*tasklist.TaskList, error) {
		return g.next.GetTaskList(ctx, id)
	}, attrTaskListID.String(id))
}

// AttachUser implements ports.TaskListRepository.
func (g *Guarded) AttachUser(ctx context.Context, userID, taskListID string) error {
	_, err := execute(ctx, g, "AttachUser", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, g.next.AttachUser(ctx, userID, taskListID)
	}, attrUserID.String(userID), attrTaskListID.String(taskListID))
	return err
}

// DetachUser implements ports.TaskListRepository.
func (g *Guarded) DetachUser(ctx context.Context, userID, taskListID string) error {
	_, err := execute(ctx, g, "DetachUser", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, g.next.DetachUser(ctx, userID, taskListID)
	}, attrUserID.String(userID), attrTaskListID.String(taskListID))
	return err
}

// CheckPermission implements ports.TaskListRepository.
func (g *Guarded) CheckPermission(ctx context.Context, userID, taskListID string) (bool, error) {
	return execute(ctx, g, "CheckPermission", func(ctx context.Context) (bool, error) {
		return g.next.CheckPermission(ctx, userID, taskListID)
	}, attrUserID.String(userID), attrTaskListID.String(taskListID))
}

// CheckOwner implements ports.TaskListRepository.
func (g *Guarded) CheckOwner(ctx context.Context, userID, taskListID string) (bool, error) {
	return execute(ctx, g, "CheckOwner", func(ctx context.Context) (bool, error) {
		return g.next.CheckOwner(ctx, userID, taskListID)
	}, attrUserID.String(userID), attrTaskListID.String(taskListID))
}

// ListForUser implements ports.TaskListRepository.
func (g *Guarded) ListForUser(ctx context.Context, query tasklist.ListQuery) ([]tasklist.Summary, error) {
	return execute(ctx, g, "ListForUser", func(ctx context.Context) ([]tasklist.Summary, error) {
		return g.next.ListForUser(ctx, query)
	}, attrUserID.String(query.UserID))
}

// UsersForTaskList implements ports.TaskListRepository.
func (g *Guarded) UsersForTaskList(ctx context.Context, taskListID string) ([]user.Summary, error) {
	return execute(ctx, g, "UsersForTaskList", func(ctx context.Context) ([]user.Summary, error) {
		return g.next.UsersForTaskList(ctx, taskListID)
	}, attrTaskListID.String(taskListID))
}

// Name returns the identifier used when registering with a
// ports.HealthRegistry.
func (g *Guarded) Name() string {
	return "store"
}

// HealthCheck reports store availability from the circuit breaker state.
// No store call is made.
//
// State mapping:
//   - "closed"    -- store is operating normally; returns nil.
//   - "half-open" -- breaker is probing recovery; returns a degraded error.
//   - "open"      -- breaker is rejecting calls; returns a failing error.
func (g *Guarded) HealthCheck(_ context.Context) error {
	state := g.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", g.system)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", g.system)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", g.system, state)
	}
}

// execute runs fn through the breaker, limiter and span, then records
// metrics outside the breaker so rejections are counted too.
func execute[T any](ctx context.Context, g *Guarded, operation string, fn func(context.Context) (T, error), attrs ...attribute.KeyValue) (T, error) {
	start := time.Now()

	res, err := g.breaker.Execute(func() (any, error) {
		if err := g.waitForRateLimit(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limit: %w", domain.ErrStorageFailure, err)
		}

		spanCtx, span := g.startSpan(ctx, operation, attrs)
		defer span.End()

		v, err := fn(spanCtx)
		finishSpan(span, err)
		return v, err
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
	}

	g.recordMetrics(ctx, operation, start, err)

	if err != nil {
		if !errors.Is(err, domain.ErrInvalidReference) && !errors.Is(err, domain.ErrBadInput) {
			g.logger.ErrorContext(ctx, "store operation failed",
				slog.String("operation", operation),
				slog.String("store", g.system),
				slog.Any("error", err),
			)
		}
		var zero T
		return zero, err
	}

	v, _ := res.(T)
	return v, nil
}

// waitForRateLimit blocks until the limiter allows the call or ctx ends.
// Returns nil immediately when rate limiting is disabled.
func (g *Guarded) waitForRateLimit(ctx context.Context) error {
	if g.limiter == nil {
		return nil
	}
	return g.limiter.Wait(ctx)
}

func (g *Guarded) startSpan(ctx context.Context, operation string, attrs []attribute.KeyValue) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("storage")

	all := append([]attribute.KeyValue{
		telemetry.AttrDBSystem.String(g.system),
		telemetry.AttrDBOperation.String(operation),
	}, attrs...)

	return tracer.Start(ctx, "store "+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(all...),
	)
}

func finishSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, domain.ErrInvalidReference) && !errors.Is(err, domain.ErrBadInput) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics records store operation duration and count. Safe to call
// with nil metrics.
func (g *Guarded) recordMetrics(ctx context.Context, operation string, start time.Time, err error) {
	if g.metrics == nil {
		return
	}

	duration := time.Since(start).Seconds()

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(g.system),
		telemetry.AttrDBOperation.String(operation),
		telemetry.AttrResult.String(resultOf(err)),
	)

	g.metrics.StoreOperationDuration.Record(ctx, duration, attrs)
	g.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case errors.Is(err, domain.ErrInvalidReference):
		return "invalid_reference"
	case errors.Is(err, domain.ErrBadInput):
		return "bad_input"
	default:
		return "error"
	}
}

// countsAsSuccess keeps caller mistakes and caller cancellations from
// tripping the breaker.
func countsAsSuccess(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrInvalidReference) ||
		errors.Is(err, domain.ErrBadInput) ||
		errors.Is(err, context.Canceled)
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
