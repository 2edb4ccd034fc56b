package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-openapi/swag"
	"github.com/intervia/go-interview-api/internal/auth"
	"github.com/intervia/go-interview-api/internal/interview"
	"github.com/intervia/go-interview-api/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*auth.Service, *test.Store) {
	t.Helper()
	store := test.NewStore()
	jwt := auth.NewJWTManager("test-secret", "interview-api", time.Hour)
	return auth.NewService(store, jwt, test.NewClock(t)), store
}

func TestRegisterCreatesAccount(t *testing.T) {
	svc, _ := newService(t)

	u, err := svc.Register(context.Background(), "ana@example.com", "secret123", "Ana", "García")
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "básico", u.PreferredDifficulty)
	assert.Equal(t, 5, u.AnxietyLevel)
	assert.True(t, u.CheckPassword("secret123"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Register(context.Background(), "ana@example.com", "secret123", "Ana", "García")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "ana@example.com", "otherpass", "Otra", "Persona")
	require.Error(t, err)
	assert.ErrorIs(t, err, interview.ErrConflict)
}

func TestRegisterValidatesInput(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Register(context.Background(), "not-an-email", "secret123", "Ana", "García")
	assert.ErrorIs(t, err, interview.ErrValidation)

	_, err = svc.Register(context.Background(), "ana@example.com", "short", "Ana", "García")
	assert.ErrorIs(t, err, interview.ErrValidation)

	_, err = svc.Register(context.Background(), "ana@example.com", "secret123", "", "García")
	assert.ErrorIs(t, err, interview.ErrValidation)
}

func TestLoginIssuesTokenAndRecordsTime(t *testing.T) {
	svc, store := newService(t)

	registered, err := svc.Register(context.Background(), "ana@example.com", "secret123", "Ana", "García")
	require.NoError(t, err)

	u, token, err := svc.Login(context.Background(), "ana@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)
	assert.NotEmpty(t, token)
	assert.NotNil(t, u.LastLogin)

	stored, err := store.GetUser(context.Background(), u.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLogin)
}

func TestLoginWrongCredentialsFailIdentically(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Register(context.Background(), "ana@example.com", "secret123", "Ana", "García")
	require.NoError(t, err)

	_, _, errWrongPassword := svc.Login(context.Background(), "ana@example.com", "wrongpass")
	_, _, errUnknownEmail := svc.Login(context.Background(), "nadie@example.com", "secret123")

	require.Error(t, errWrongPassword)
	require.Error(t, errUnknownEmail)
	assert.ErrorIs(t, errWrongPassword, interview.ErrValidation)
	assert.ErrorIs(t, errUnknownEmail, interview.ErrValidation)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

func TestUpdateProfileAppliesChanges(t *testing.T) {
	svc, _ := newService(t)

	u, err := svc.Register(context.Background(), "ana@example.com", "secret123", "Ana", "García")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), u.ID, auth.ProfileUpdate{
		FirstName:           swag.String("Anita"),
		PreferredDifficulty: swag.String("avanzado"),
		AnxietyLevel:        intPtr(3),
		Password:            swag.String("newsecret"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Anita", updated.FirstName)
	assert.Equal(t, "García", updated.LastName)
	assert.Equal(t, "avanzado", updated.PreferredDifficulty)
	assert.Equal(t, 3, updated.AnxietyLevel)
	assert.True(t, updated.CheckPassword("newsecret"))
}

func TestUpdateProfileValidatesAnxietyLevel(t *testing.T) {
	svc, _ := newService(t)

	u, err := svc.Register(context.Background(), "ana@example.com", "secret123", "Ana", "García")
	require.NoError(t, err)

	_, err = svc.UpdateProfile(context.Background(), u.ID, auth.ProfileUpdate{
		AnxietyLevel: intPtr(11),
	})
	assert.ErrorIs(t, err, interview.ErrValidation)
}

func intPtr(v int) *int {
	return &v
}
