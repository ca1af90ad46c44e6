package registration

import (
	"context"
	"errors"
	"time"

	"github.com/zjrosen/signup/internal/log"
)

// ErrSimulatedFailure is returned by a SimulatedRegistrar configured to fail.
var ErrSimulatedFailure = errors.New("simulated registration failure")

// Registrar receives validated input. A nil error means the registration was
// accepted; any error is a rejection. No retry or error-detail contract is
// implied.
type Registrar interface {
	Register(ctx context.Context, in Input) error
}

// RegistrarFunc adapts a function to the Registrar interface.
type RegistrarFunc func(ctx context.Context, in Input) error

// Register calls f(ctx, in).
func (f RegistrarFunc) Register(ctx context.Context, in Input) error {
	return f(ctx, in)
}

type attemptKey struct{}

// WithAttemptID returns a context carrying the submission attempt ID.
func WithAttemptID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, attemptKey{}, id)
}

// AttemptID returns the submission attempt ID stored in ctx, if any.
func AttemptID(ctx context.Context) string {
	id, _ := ctx.Value(attemptKey{}).(string)
	return id
}

// SimulatedRegistrar stands in for a remote registration service: it logs
// the input, waits for a fixed delay and then accepts or rejects.
type SimulatedRegistrar struct {
	delay time.Duration
	fail  bool
}

// NewSimulatedRegistrar creates a registrar that resolves after delay.
// When fail is true every call is rejected with ErrSimulatedFailure.
func NewSimulatedRegistrar(delay time.Duration, fail bool) *SimulatedRegistrar {
	return &SimulatedRegistrar{delay: delay, fail: fail}
}

// Register implements Registrar. It returns ctx.Err() if ctx ends first.
func (s *SimulatedRegistrar) Register(ctx context.Context, in Input) error {
	fields := append([]any{"attempt", AttemptID(ctx)}, in.LogFields()...)
	log.Info(log.CatSubmit, "Registration data received", fields...)

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	if s.fail {
		return ErrSimulatedFailure
	}
	return nil
}
