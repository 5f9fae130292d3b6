package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"regexp"
	"time"

	"booth-rally-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

var (
	handleRe  = regexp.MustCompile(`^@?[A-Za-z0-9_]{1,64}$`)
	accountRe = regexp.MustCompile(`^[0-9]{8}$`)
)

const adminSessionTTL = 8 * time.Hour

type AuthService struct {
	db            *gorm.DB
	game          *GameService
	jwtSecret     []byte
	adminPassword string
}

func NewAuthService(db *gorm.DB, game *GameService, jwtSecret, adminPassword string) *AuthService {
	return &AuthService{
		db:            db,
		game:          game,
		jwtSecret:     []byte(jwtSecret),
		adminPassword: adminPassword,
	}
}

// Login validates the handle and 8-digit account id, creates the participant
// record if absent, and issues a session token. Re-login against an existing
// record is a no-op. The token is only issued after the store write succeeds,
// so a session never exists without its record.
func (s *AuthService) Login(handle, accountID string) (string, *models.Participant, error) {
	if !handleRe.MatchString(handle) {
		return "", nil, validationErr("handle must be 1-64 letters, digits or underscores, optionally prefixed with @")
	}
	if !accountRe.MatchString(accountID) {
		return "", nil, validationErr("account id must be exactly 8 digits")
	}

	var participant models.Participant
	err := s.db.Where("handle = ?", handle).First(&participant).Error
	switch {
	case err == nil:
		// no-op re-login
	case errors.Is(err, gorm.ErrRecordNotFound):
		participant = models.Participant{
			Handle:     handle,
			AccountID:  accountID,
			TotalScore: 0,
		}
		if err := s.db.Create(&participant).Error; err != nil {
			return "", nil, fmt.Errorf("creating participant: %w", err)
		}
	default:
		return "", nil, fmt.Errorf("looking up participant: %w", err)
	}

	token, err := s.generateParticipantToken(handle)
	if err != nil {
		return "", nil, err
	}
	return token, &participant, nil
}

// AdminLogin compares the shared staff password in constant time and issues
// an 8-hour admin token naming the staff member.
func (s *AuthService) AdminLogin(password, staff string) (string, error) {
	if staff == "" {
		return "", validationErr("staff name is required")
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return "", validationErr("invalid admin password")
	}

	claims := jwt.MapClaims{
		"role":  "admin",
		"staff": staff,
		"exp":   time.Now().Add(adminSessionTTL).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) generateParticipantToken(handle string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"handle": handle,
		// nanosecond login timestamp, compared against the reset marker
		"ts":  now.UnixNano(),
		"exp": now.Add(7 * 24 * time.Hour).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ValidateParticipantToken returns the handle a token belongs to. Tokens
// issued before the current reset marker, or naming a handle that no longer
// exists, are rejected: that is how a reset logs everyone out.
func (s *AuthService) ValidateParticipantToken(tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}

	handle, ok := claims["handle"].(string)
	if !ok || handle == "" {
		return "", errors.New("invalid token")
	}
	tsFloat, ok := claims["ts"].(float64)
	if !ok {
		return "", errors.New("invalid token")
	}
	issuedAt := time.Unix(0, int64(tsFloat))

	resetAt, err := s.game.Marker()
	if err != nil {
		return "", err
	}
	if issuedAt.Before(resetAt) {
		return "", errors.New("session invalidated by reset, please log in again")
	}

	var count int64
	if err := s.db.Model(&models.Participant{}).Where("handle = ?", handle).Count(&count).Error; err != nil {
		return "", fmt.Errorf("looking up participant: %w", err)
	}
	if count == 0 {
		return "", errors.New("session invalidated by reset, please log in again")
	}
	return handle, nil
}

// ValidateAdminToken returns the staff name an admin token was issued to.
func (s *AuthService) ValidateAdminToken(tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}
	if role, ok := claims["role"].(string); !ok || role != "admin" {
		return "", errors.New("invalid token")
	}
	staff, ok := claims["staff"].(string)
	if !ok || staff == "" {
		return "", errors.New("invalid token")
	}
	return staff, nil
}

func (s *AuthService) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
