package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("invited users start pending", func(t *testing.T) {
		u, err := NewUser("tnt_abc", "Alice Johnson", "Admin@Demo.com ", RoleTenantAdmin)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(u.SID(), "usr_"))
		assert.Equal(t, StatusPending, u.Status())
		assert.Equal(t, "admin@demo.com", u.Email(), "email should be normalized")
		assert.Equal(t, RoleTenantAdmin, u.Role())
	})

	t.Run("requires email", func(t *testing.T) {
		_, err := NewUser("tnt_abc", "Alice", "  ", RoleViewer)
		assert.ErrorIs(t, err, ErrEmailRequired)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewUser("tnt_abc", "Alice", "a@b.com", Role("Superuser"))
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestUserLifecycle(t *testing.T) {
	invite := func(t *testing.T) *User {
		t.Helper()
		u, err := NewUser("tnt_abc", "Bob", "bob@demo.com", RoleOpsManager)
		require.NoError(t, err)
		return u
	}

	t.Run("pending to active", func(t *testing.T) {
		u := invite(t)
		require.NoError(t, u.Activate())
		assert.Equal(t, StatusActive, u.Status())
		assert.ErrorIs(t, u.Activate(), ErrAlreadyActive)
	})

	t.Run("disable and reactivate", func(t *testing.T) {
		u := invite(t)
		require.NoError(t, u.Activate())
		require.NoError(t, u.Disable())
		assert.Equal(t, StatusDisabled, u.Status())
		assert.ErrorIs(t, u.Disable(), ErrAlreadyDisabled)
		require.NoError(t, u.Activate())
		assert.Equal(t, StatusActive, u.Status())
	})

	t.Run("role change", func(t *testing.T) {
		u := invite(t)
		require.NoError(t, u.ChangeRole(RoleFinanceOfficer))
		assert.Equal(t, RoleFinanceOfficer, u.Role())
		assert.ErrorIs(t, u.ChangeRole(Role("Root")), ErrInvalidRole)
	})
}
