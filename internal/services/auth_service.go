package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/redis"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid staff id or password")
	ErrSessionNotFound    = errors.New("session not found or expired")
)

const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%"

// SessionStore keeps staff sessions; satisfied by redis.Client.
type SessionStore interface {
	SetSession(token string, session *redis.StaffSession, ttl time.Duration) error
	GetSession(token string) (*redis.StaffSession, error)
	DeleteSession(token string) error
}

type AuthService interface {
	Login(staffID, password string) (string, *redis.StaffSession, error)
	Logout(token string) error
	CurrentStaff(token string) (*redis.StaffSession, error)
	RegisterStaff(staff *models.Staff, password string) error
	GenerateTemporaryPassword(length int) (string, error)
}

type authService struct {
	staffRepo  repository.StaffRepository
	sessions   SessionStore
	sessionTTL time.Duration
}

func NewAuthService(staffRepo repository.StaffRepository, sessions SessionStore, sessionTTL time.Duration) AuthService {
	return &authService{staffRepo: staffRepo, sessions: sessions, sessionTTL: sessionTTL}
}

// Login checks the staff id and password against inhouse_staff and opens a
// session. Lookup misses and password mismatches report the same error.
func (s *authService) Login(staffID, password string) (string, *redis.StaffSession, error) {
	staff, err := s.staffRepo.GetByStaffID(staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up staff: %w", err)
	}

	if !staff.IsActive {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	session := &redis.StaffSession{
		StaffID:   staff.StaffID,
		Name:      staff.Name,
		CreatedAt: time.Now(),
	}

	if err := s.sessions.SetSession(token, session, s.sessionTTL); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}

	return token, session, nil
}

func (s *authService) Logout(token string) error {
	return s.sessions.DeleteSession(token)
}

func (s *authService) CurrentStaff(token string) (*redis.StaffSession, error) {
	session, err := s.sessions.GetSession(token)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *authService) RegisterStaff(staff *models.Staff, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	staff.PasswordHash = string(hashedPassword)
	return s.staffRepo.Create(staff)
}

// GenerateTemporaryPassword builds a random password for new staff accounts.
// Lengths under 8 are bumped to 8.
func (s *authService) GenerateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordCharset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		out[i] = passwordCharset[n.Int64()]
	}

	return string(out), nil
}
