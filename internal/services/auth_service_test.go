package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	env := setupServiceTestEnv(t)
	created := env.createUser(t, "alice")

	user, err := env.auth.Login(LoginInput{
		Username: "alice",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	env := setupServiceTestEnv(t)
	env.createUser(t, "alice")

	_, err := env.auth.Login(LoginInput{
		Username: "alice",
		Password: "wrong",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	env := setupServiceTestEnv(t)
	env.createUser(t, "alice")

	_, err := env.auth.Login(LoginInput{
		Username: "mallory",
		Password: "supersecret",
	})

	// Unknown username and wrong password are indistinguishable by design.
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_MalformedStoredHashIsInternal(t *testing.T) {
	env := setupServiceTestEnv(t)
	user := env.createUser(t, "alice")

	user.Password = "not-a-phc-string"
	require.NoError(t, env.userRepo.Update(user))

	_, err := env.auth.Login(LoginInput{
		Username: "alice",
		Password: "supersecret",
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidCredentials, "a corrupt hash is a server fault, not bad credentials")
}
