package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genzsoft/ant2025-storefront-backend/models"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	id := uuid.Must(uuid.NewV7())
	token, err := GenerateJWT(id, "01711000000", models.RoleShopOwner)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "01711000000", claims.Phone)
	assert.Equal(t, models.RoleShopOwner, claims.Role)
}

func TestValidateJWTRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(uuid.Must(uuid.NewV7()), "01711000000", models.RoleBuyer)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT(uuid.Must(uuid.NewV7()), "01711000000", models.RoleBuyer)
	assert.Error(t, err)
}
