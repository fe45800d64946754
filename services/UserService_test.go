package services

import (
	"errors"
	"testing"

	"marketstore/entities"
	"marketstore/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users  map[string]models.User_db
	nextId int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]models.User_db{}}
}

func (f *fakeUserRepo) GetUserById(id int) (models.User_db, bool, error) {
	for _, u := range f.users {
		if u.Id == id {
			return u, true, nil
		}
	}
	return models.User_db{}, false, nil
}

func (f *fakeUserRepo) GetUserByEmail(email string) (models.User_db, bool, error) {
	u, ok := f.users[email]
	return u, ok, nil
}

func (f *fakeUserRepo) EncryptPassword(userPass string) (string, error) {
	return "hashed:" + userPass, nil
}

func (f *fakeUserRepo) VerifyPassword(hashedPassword, sentPassword string) bool {
	return hashedPassword == "hashed:"+sentPassword
}

func (f *fakeUserRepo) AddNewUser(uModel models.User_db) (int, error) {
	f.nextId++
	uModel.Id = f.nextId
	f.users[uModel.Email] = uModel
	return uModel.Id, nil
}

type fakeTokenRepo struct {
	tokens map[string]entities.UserData
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]entities.UserData{}}
}

func (f *fakeTokenRepo) CreateToken(uModel models.User_db) (string, error) {
	token := uuid.NewString()
	f.tokens[token] = entities.UserData{Id: uModel.Id, Name: uModel.Name, Role: uModel.Role}
	return token, nil
}

func (f *fakeTokenRepo) GetTokenInfo(token string) (entities.UserData, bool, error) {
	user, ok := f.tokens[token]
	return user, ok, nil
}

func (f *fakeTokenRepo) DeleteUserTokens(userId int) error {
	for token, user := range f.tokens {
		if user.Id == userId {
			delete(f.tokens, token)
		}
	}
	return nil
}

func TestRegisterRequest(t *testing.T) {
	us := NewUserService(newFakeUserRepo(), newFakeTokenRepo())

	user, err := us.RegisterRequest(models.RegisterRequest{
		Name: "Ann", Email: "ann@example.com", Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, user.Id)
	assert.Equal(t, "user", user.Role)

	_, err = us.RegisterRequest(models.RegisterRequest{
		Name: "Ann again", Email: "ann@example.com", Password: "other",
	})
	var verrs models.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "The email has already been taken.", verrs["email"])
}

func TestLoginRequest(t *testing.T) {
	us := NewUserService(newFakeUserRepo(), newFakeTokenRepo())
	_, err := us.RegisterRequest(models.RegisterRequest{
		Name: "Ann", Email: "ann@example.com", Password: "secret",
	})
	require.NoError(t, err)

	token, err := us.LoginRequest(models.Credentials{Email: "ann@example.com", Password: "secret"})
	require.NoError(t, err)
	user, ok, err := us.CheckAuth(token)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ann", user.Name)

	_, err = us.LoginRequest(models.Credentials{Email: "ann@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	// unknown email gets the same answer as a wrong password
	_, err = us.LoginRequest(models.Credentials{Email: "nobody@example.com", Password: "secret"})
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestLogoutRevokesEveryToken(t *testing.T) {
	us := NewUserService(newFakeUserRepo(), newFakeTokenRepo())
	_, err := us.RegisterRequest(models.RegisterRequest{
		Name: "Ann", Email: "ann@example.com", Password: "secret",
	})
	require.NoError(t, err)

	first, err := us.LoginRequest(models.Credentials{Email: "ann@example.com", Password: "secret"})
	require.NoError(t, err)
	second, err := us.LoginRequest(models.Credentials{Email: "ann@example.com", Password: "secret"})
	require.NoError(t, err)

	require.NoError(t, us.LogoutRequest(first))

	_, ok, err := us.CheckAuth(first)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = us.CheckAuth(second)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, us.LogoutRequest(first), models.ErrUnauthorized)
}

func TestEnsureAdmin(t *testing.T) {
	ur := newFakeUserRepo()
	us := NewUserService(ur, newFakeTokenRepo())

	require.NoError(t, us.EnsureAdmin("admin@example.com", "topsecret"))
	admin, exists, err := ur.GetUserByEmail("admin@example.com")
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, "admin", admin.Role)

	// a second start must not duplicate the account
	require.NoError(t, us.EnsureAdmin("admin@example.com", "topsecret"))
	assert.Len(t, ur.users, 1)

	// not configured, nothing happens
	require.NoError(t, us.EnsureAdmin("", ""))
	assert.Len(t, ur.users, 1)
}
