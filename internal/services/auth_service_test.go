package services

import (
	"testing"
	"time"

	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeStaffRepo, *fakeSessionStore) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	staffRepo := newFakeStaffRepo(&models.Staff{
		StaffID:      "ST001",
		Name:         "Alex Staff",
		PasswordHash: string(hash),
		IsActive:     true,
	})
	sessions := newFakeSessionStore()
	return NewAuthService(staffRepo, sessions, time.Hour), staffRepo, sessions
}

func TestLoginSuccess(t *testing.T) {
	svc, _, sessions := newAuthFixture(t)

	token, session, err := svc.Login("ST001", "s3cret")
	require.NoError(t, err)

	assert.NotEmpty(t, token)
	assert.Equal(t, "ST001", session.StaffID)
	assert.Equal(t, "Alex Staff", session.Name)

	stored, err := sessions.GetSession(token)
	require.NoError(t, err)
	assert.Equal(t, "ST001", stored.StaffID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, _, err := svc.Login("ST001", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownStaffID(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, _, err := svc.Login("ST999", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveStaff(t *testing.T) {
	svc, staffRepo, _ := newAuthFixture(t)
	staffRepo.staff["ST001"].IsActive = false

	_, _, err := svc.Login("ST001", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutEndsSession(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	token, _, err := svc.Login("ST001", "s3cret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(token))

	_, err = svc.CurrentStaff(token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegisterStaffHashesPassword(t *testing.T) {
	svc, staffRepo, _ := newAuthFixture(t)

	staff := &models.Staff{StaffID: "ST002", Name: "New Hire", IsActive: true}
	require.NoError(t, svc.RegisterStaff(staff, "welcome1"))

	stored, err := staffRepo.GetByStaffID("ST002")
	require.NoError(t, err)
	assert.NotEqual(t, "welcome1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("welcome1")))
}

func TestGenerateTemporaryPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	pw, err := svc.GenerateTemporaryPassword(12)
	require.NoError(t, err)
	assert.Len(t, pw, 12)

	short, err := svc.GenerateTemporaryPassword(3)
	require.NoError(t, err)
	assert.Len(t, short, 8)

	other, err := svc.GenerateTemporaryPassword(12)
	require.NoError(t, err)
	assert.NotEqual(t, pw, other)
}
