package runtime

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutionContext_Cleanup(t *testing.T) {
	ec := NewExecutionContext(context.Background(), afero.NewMemMapFs())

	var order []int
	ec.RegisterCleanup(func() error {
		order = append(order, 1)
		return nil
	})
	ec.RegisterCleanup(func() error {
		panic("boom")
	})
	ec.RegisterCleanup(func() error {
		order = append(order, 3)
		return errors.New("logged, not returned")
	})

	require.NoError(t, ec.Cleanup())
	assert.Equal(t, []int{3, 1}, order)

	// cleanups run once
	require.NoError(t, ec.Cleanup())
	assert.Equal(t, []int{3, 1}, order)
}

func TestExecutionContext_Executor(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ec := NewExecutionContext(ctx, nil)
	assert.IsType(t, &afero.OsFs{}, ec.Fs())

	expected := errors.New("failed")
	assert.ErrorIs(t, ec.Executor().Execute(func() error { return expected }), expected)

	called := false
	assert.NoError(t, ec.Executor().Execute(func() error {
		called = true
		return nil
	}))
	assert.True(t, called)

	cancel()
	called = false
	assert.ErrorIs(t, ec.Executor().Execute(func() error {
		called = true
		return nil
	}), context.Canceled)
	assert.False(t, called)
}
