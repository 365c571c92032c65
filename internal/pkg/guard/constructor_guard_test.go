package guard_test

import (
	"errors"
	"sync"
	"testing"

	"laundry/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("stage not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardUsageExample shows the guard embedded in a command value.
func TestConstructorGuardUsageExample(t *testing.T) {
	type rejectCommand struct {
		reason string
		guard  guard.ConstructorGuard
	}

	errNotConstructed := errors.New("rejectCommand must be created via newRejectCommand")

	newRejectCommand := func(reason string) (rejectCommand, error) {
		if reason == "" {
			return rejectCommand{}, errors.New("reason is required")
		}
		return rejectCommand{reason: reason, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		cmd, err := newRejectCommand("over capacity today")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errNotConstructed))
	})

	t.Run("struct_literal_fails_validation", func(t *testing.T) {
		cmd := rejectCommand{reason: "bypassing constructor"}

		assert.Equal(t, errNotConstructed, cmd.guard.Validate(errNotConstructed))
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		cmd, err := newRejectCommand("")

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, cmd.guard.Validate(errNotConstructed))
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(nil))
		}()
	}
	wg.Wait()
}
