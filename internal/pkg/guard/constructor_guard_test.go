package guard_test

import (
	"errors"
	"testing"

	"restaurant/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	g := guard.NewConstructorGuard()

	customError := errors.New("test object not constructed")
	require.NoError(t, g.Validate(customError))
	require.NoError(t, g.Validate(nil))
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates the intended embedding pattern
// for domain value objects.
func TestConstructorGuardUsageExample(t *testing.T) {
	type price struct {
		cents int
		guard guard.ConstructorGuard
	}

	var errPriceNotConstructed = errors.New("price must be created via newPrice")

	newPrice := func(cents int) (price, error) {
		if cents < 0 {
			return price{}, errors.New("cents cannot be negative")
		}
		return price{cents: cents, guard: guard.NewConstructorGuard()}, nil
	}

	validatePrice := func(p price) error {
		return p.guard.Validate(errPriceNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		p, err := newPrice(1250)
		require.NoError(t, err)
		require.NoError(t, validatePrice(p))
		assert.Equal(t, 1250, p.cents)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p price // zero value
		err := validatePrice(p)
		require.Error(t, err)
		assert.Equal(t, errPriceNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newPrice(-1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be negative")
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	require.Error(t, guard.ErrDefaultConstructorGuard)
	assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
}

func TestConstructorGuardCanBePassedByValue(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("test error")

	gCopy := g

	require.NoError(t, g.Validate(testError))
	require.NoError(t, gCopy.Validate(testError))
}
