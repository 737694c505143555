// Package mediator routes typed requests to their single registered handler.
//
// Handlers are registered once at startup with Register; Send looks the
// handler up by the request's Go type and runs it through the behavior
// pipeline. The registry is sealed before the server starts accepting
// requests and is read-only afterwards.
package mediator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Configuration errors
var (
	ErrHandlerNotRegistered     = errors.New("no handler registered for request type")
	ErrHandlerAlreadyRegistered = errors.New("handler already registered for request type")
	ErrResultTypeMismatch       = errors.New("registered handler returns a different result type")
	ErrSealed                   = errors.New("mediator is sealed")
)

// Handler executes one request type
type Handler[Req any, Res any] interface {
	Handle(ctx context.Context, req Req) (Res, error)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc[Req any, Res any] func(ctx context.Context, req Req) (Res, error)

// Handle calls f(ctx, req)
func (f HandlerFunc[Req, Res]) Handle(ctx context.Context, req Req) (Res, error) {
	return f(ctx, req)
}

type registration struct {
	resultType reflect.Type
	invoke     func(ctx context.Context, req any) (any, error)
}

// Mediator is the single dispatch entry point for commands and queries
type Mediator struct {
	mu        sync.RWMutex
	handlers  map[reflect.Type]registration
	behaviors []Behavior
	logger    *zap.Logger
	sealed    bool
}

// New creates a mediator. Behaviors wrap every dispatch; the first one is
// the outermost.
func New(logger *zap.Logger, behaviors ...Behavior) *Mediator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mediator{
		handlers:  make(map[reflect.Type]registration),
		behaviors: behaviors,
		logger:    logger,
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register binds handler to the request type Req. Registering the same
// request type twice is a configuration error.
func Register[Req any, Res any](m *Mediator, handler Handler[Req, Res]) error {
	reqType := typeOf[Req]()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sealed {
		return fmt.Errorf("%w: cannot register %s", ErrSealed, reqType)
	}
	if _, exists := m.handlers[reqType]; exists {
		return fmt.Errorf("%w: %s", ErrHandlerAlreadyRegistered, reqType)
	}

	m.handlers[reqType] = registration{
		resultType: typeOf[Res](),
		invoke: func(ctx context.Context, req any) (any, error) {
			return handler.Handle(ctx, req.(Req))
		},
	}

	m.logger.Debug("Registered request handler",
		zap.String("request", reqType.String()),
		zap.String("handler", fmt.Sprintf("%T", handler)))
	return nil
}

// Seal freezes the registry; later registrations fail with ErrSealed
func (m *Mediator) Seal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sealed = true
}

// Registered returns the registered request type names, sorted
func (m *Mediator) Registered() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.handlers))
	for t := range m.handlers {
		names = append(names, t.String())
	}
	sort.Strings(names)
	return names
}

// Send dispatches req to the handler registered for Req and returns its
// result. A missing handler or a result type mismatch is a configuration
// error and is logged at error level.
func Send[Req any, Res any](ctx context.Context, m *Mediator, req Req) (Res, error) {
	var zero Res
	reqType := typeOf[Req]()

	m.mu.RLock()
	reg, ok := m.handlers[reqType]
	m.mu.RUnlock()

	if !ok {
		m.logger.Error("Request dispatched without a registered handler",
			zap.String("request", reqType.String()))
		return zero, fmt.Errorf("%w: %s", ErrHandlerNotRegistered, reqType)
	}
	if wanted := typeOf[Res](); reg.resultType != wanted {
		m.logger.Error("Request dispatched with the wrong result type",
			zap.String("request", reqType.String()),
			zap.String("registered", reg.resultType.String()),
			zap.String("requested", wanted.String()))
		return zero, fmt.Errorf("%w: %s returns %s, not %s", ErrResultTypeMismatch, reqType, reg.resultType, wanted)
	}

	next := func(ctx context.Context) (any, error) {
		return reg.invoke(ctx, req)
	}
	for i := len(m.behaviors) - 1; i >= 0; i-- {
		behavior, inner := m.behaviors[i], next
		next = func(ctx context.Context) (any, error) {
			return behavior.Handle(ctx, req, inner)
		}
	}

	out, err := next(ctx)
	if err != nil {
		return zero, err
	}
	res, _ := out.(Res)
	return res, nil
}
