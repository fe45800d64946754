package repository

import (
	"testing"

	"marketstore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	ur, err := NewUserRepository(db)
	require.NoError(t, err)

	hashed, err := ur.EncryptPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hashed)
	assert.True(t, ur.VerifyPassword(hashed, "secret"))
	assert.False(t, ur.VerifyPassword(hashed, "wrong"))

	id, err := ur.AddNewUser(models.User_db{
		Name: "Ann", Email: "ann@example.com", Password: hashed, Role: "user",
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	byEmail, exists, err := ur.GetUserByEmail("ann@example.com")
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, id, byEmail.Id)
	assert.Equal(t, "user", byEmail.Role)

	byId, exists, err := ur.GetUserById(id)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, "Ann", byId.Name)

	_, exists, err = ur.GetUserByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
