package policy

import (
	"testing"

	"github.com/pixiplay/platform/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize_AdminAllowed(t *testing.T) {
	admin := &domain.User{Role: domain.RoleAdmin}
	for _, action := range []Action{ActionList, ActionView, ActionCreate, ActionUpdate, ActionDelete} {
		assert.NoError(t, Authorize(admin, action, "game"))
	}
}

func TestAuthorize_NilUserIs401(t *testing.T) {
	err := Authorize(nil, ActionCreate, "game")
	require.Error(t, err)

	appErr, ok := err.(*domain.AppError)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.Status)
}

func TestAuthorize_NonAdminIs403(t *testing.T) {
	for _, role := range []string{domain.RoleParent, domain.RoleTeacher, domain.RoleKid} {
		err := Authorize(&domain.User{Role: role}, ActionDelete, "game")
		require.Error(t, err, role)

		appErr, ok := err.(*domain.AppError)
		require.True(t, ok)
		assert.Equal(t, 403, appErr.Status)
		assert.Contains(t, appErr.Message, role)
	}
}
