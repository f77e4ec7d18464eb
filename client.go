package newtype

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/wagoodman/go-partybus"

	"github.com/anchore/go-logger"
	"github.com/anchore/newtype/internal/bus"
	"github.com/anchore/newtype/internal/log"
	"github.com/anchore/newtype/pkg/codegen"
	"github.com/anchore/newtype/runtime"
)

// Generate expands every struct annotated with //newtype:tagged under dir into a wrapper type backed by
// tagged.Tagged, returning the files written (or, in check mode, compared).
func Generate(ctx context.Context, dir string, options ...Option) ([]codegen.File, error) {
	log.Debugf("generate: dir=%+v", dir)

	// apply config options
	cfg := codegen.Config{Dir: dir}
	if err := applyOptions(&cfg, options...); err != nil {
		return nil, err
	}

	g, err := codegen.NewGenerator(cfg)
	if err != nil {
		return nil, err
	}

	ec := newExecutionContext(ctx, cfg.Fs)
	defer func() {
		if err := ec.Cleanup(); err != nil {
			log.Errorf("failed to cleanup: %v", err)
		}
	}()

	return g.Generate(ec)
}

func SetLogger(logger logger.Logger) {
	log.Log = logger
}

func SetBus(b *partybus.Bus) {
	bus.SetPublisher(b)
}

type ExecutionContext = runtime.ExecutionContext

func DefaultExecutionContext(ctx ...context.Context) ExecutionContext {
	c := context.Background()
	switch len(ctx) {
	case 0:
	case 1:
		c = ctx[0]
	default:
		panic(fmt.Sprintf("may only specify one context, got: %v", ctx))
	}
	return newExecutionContext(c, nil)
}

func newExecutionContext(ctx context.Context, fs afero.Fs) ExecutionContext {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return runtime.NewExecutionContext(ctx, fs)
}
