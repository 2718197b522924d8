package principal_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/principal"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrincipal(t *testing.T) {
	t.Run("customer with no roles", func(t *testing.T) {
		p, err := principal.NewPrincipal(kernel.NewUUID(), "alice", nil, false)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "alice", p.Username())
		assert.True(t, p.IsCustomerOnly())
		assert.False(t, p.IsManager())
		assert.False(t, p.IsDeliveryCrew())
	})

	t.Run("manager", func(t *testing.T) {
		p, err := principal.NewPrincipal(kernel.NewUUID(), "bob", []principal.Role{principal.RoleManager}, false)

		require.NoError(t, err)
		assert.True(t, p.IsManager())
		assert.False(t, p.IsCustomerOnly())
	})

	t.Run("superuser implies manager", func(t *testing.T) {
		p, err := principal.NewPrincipal(kernel.NewUUID(), "root", nil, true)

		require.NoError(t, err)
		assert.True(t, p.IsManager())
		assert.False(t, p.HasRole(principal.RoleManager))
		assert.False(t, p.IsCustomerOnly())
	})

	t.Run("delivery crew", func(t *testing.T) {
		p, err := principal.NewPrincipal(kernel.NewUUID(), "dana", []principal.Role{principal.RoleDeliveryCrew}, false)

		require.NoError(t, err)
		assert.True(t, p.IsDeliveryCrew())
		assert.False(t, p.IsManager())
	})

	t.Run("invalid id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := principal.NewPrincipal(zero, "alice", nil, false)
		require.Error(t, err)
	})

	t.Run("empty username", func(t *testing.T) {
		_, err := principal.NewPrincipal(kernel.NewUUID(), "", nil, false)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := principal.NewPrincipal(kernel.NewUUID(), "alice", []principal.Role{principal.RoleUnknown}, false)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPrincipal_Validate(t *testing.T) {
	var p principal.Principal // not constructed
	require.ErrorIs(t, p.Validate(), principal.ErrPrincipalIsNotConstructed)
}

func TestRoleFromString(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    principal.Role
		wantErr bool
	}{
		{"manager group", "Manager", principal.RoleManager, false},
		{"delivery crew group", "Delivery crew", principal.RoleDeliveryCrew, false},
		{"unknown group", "Waiter", principal.RoleUnknown, true},
		{"empty", "", principal.RoleUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := principal.RoleFromString(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "Manager", principal.RoleManager.String())
	assert.Equal(t, "Delivery crew", principal.RoleDeliveryCrew.String())
	assert.Equal(t, "Unknown", principal.RoleUnknown.String())
	assert.Equal(t, "Unknown", principal.Role(42).String())
}
