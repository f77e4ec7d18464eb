package runtime

import (
	"context"
	"sync"

	"github.com/spf13/afero"
	"github.com/wagoodman/go-partybus"

	"github.com/anchore/go-logger"
	"github.com/anchore/newtype/internal/bus"
	"github.com/anchore/newtype/internal/log"
)

type Executor interface {
	Execute(func() error) error
}

// ExecutionContext contains access to everything a generator run needs beyond its configuration
type ExecutionContext interface {
	Context() context.Context
	Fs() afero.Fs
	RegisterCleanup(func() error)
	Cleanup() error
	Log() logger.Logger
	Publisher() partybus.Publisher
	Executor() Executor
}

func NewExecutionContext(ctx context.Context, fs afero.Fs) ExecutionContext {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	ec := &executionContext{
		mu:        sync.Mutex{},
		ctx:       ctx,
		cleanups:  nil,
		fs:        fs,
		log:       log.Log,
		publisher: staticPublisher{},
	}
	ec.executor = serialExecutor{ec: ec}
	return ec
}

// serialExecutor runs each function in the calling goroutine, stopping early once the context is done.
type serialExecutor struct {
	ec ExecutionContext
}

func (s serialExecutor) Execute(f func() error) error {
	if err := s.ec.Context().Err(); err != nil {
		return err
	}
	err := f()
	if err != nil {
		s.ec.Log().Debugf("%v", err)
	}
	return err
}

var _ Executor = (*serialExecutor)(nil)

type staticPublisher struct{}

func (s staticPublisher) Publish(event partybus.Event) {
	bus.Publish(event)
}

var _ partybus.Publisher = (*staticPublisher)(nil)

type executionContext struct {
	mu        sync.Mutex
	ctx       context.Context
	cleanups  []func() error
	fs        afero.Fs
	log       logger.Logger
	publisher partybus.Publisher
	executor  Executor
}

func (p *executionContext) Executor() Executor {
	return p.executor
}

func (p *executionContext) Publisher() partybus.Publisher {
	return p.publisher
}

func (p *executionContext) Context() context.Context {
	return p.ctx
}

func (p *executionContext) Fs() afero.Fs {
	return p.fs
}

func (p *executionContext) RegisterCleanup(cleanupFunc func() error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cleanups = append(p.cleanups, cleanupFunc)
}

// Cleanup runs registered cleanups in reverse order of registration. Failures and panics are logged, not returned.
func (p *executionContext) Cleanup() error {
	p.mu.Lock()
	cleanups := p.cleanups
	p.cleanups = nil
	p.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		withPanicRecovery(p, cleanups[i])
	}
	return nil
}

func withPanicRecovery(ctx ExecutionContext, fn func() error) {
	defer func() {
		if err := recover(); err != nil {
			ctx.Log().Errorf("recovered from panic due to: %v", err)
		}
	}()
	execute(ctx, fn)
}

func (p *executionContext) Log() logger.Logger {
	return p.log
}

func execute(ctx ExecutionContext, fn func() error) {
	err := fn()
	if err != nil {
		ctx.Log().Errorf("error executing function: %v", err)
	}
}

var _ ExecutionContext = (*executionContext)(nil)
