package newtype

import (
	"context"

	"github.com/anchore/newtype/pkg/codegen"
)

// GenerateWithAdapters replicates the previous behavior of Generate, where the adapter selection was a
// positional argument.
//
// Deprecated: use Generate with WithAdapters instead
func GenerateWithAdapters(ctx context.Context, dir, adapters string, opts ...Option) ([]codegen.File, error) {
	return Generate(ctx, dir, append([]Option{WithAdapters(adapters)}, opts...)...)
}
