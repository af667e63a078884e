package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/devhive/backend/internal/models"
	"github.com/devhive/backend/internal/types"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password, so the response cannot be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("wrong username or password")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidToken       = errors.New("invalid token")
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 24 * time.Hour
)

// AuthService handles signup, login and token issuance/verification
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

// Signup creates a new profile record. Username uniqueness rides entirely
// on the database unique index; the translated duplicate-key error is the
// sole conflict signal, so there is no check-then-insert race.
func (s *AuthService) Signup(ctx context.Context, req *types.SignupRequest) (*models.Dev, error) {
	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	dev := models.Dev{
		Username:     req.Username,
		Firstname:    req.Firstname,
		Middlename:   req.Middlename,
		Lastname:     req.Lastname,
		PasswordHash: hash,
		Bio:          req.Bio,
		Stacks:       req.Stacks,
		Links:        req.Links,
	}

	if err := s.db.WithContext(ctx).Create(&dev).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return &dev, nil
}

// Login looks up a profile by exact username, projecting only the columns
// needed for the credential check.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Dev, error) {
	var dev models.Dev
	err := s.db.WithContext(ctx).
		Select("id", "username", "password_hash").
		Where("username = ?", username).
		First(&dev).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dev.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &dev, nil
}

// GenerateAccessToken issues a short-lived token carrying id + username
func (s *AuthService) GenerateAccessToken(id, username string) (string, error) {
	return s.signToken(&types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		ID:       id,
		Username: username,
	})
}

// GenerateRefreshToken issues a longer-lived token carrying the id only
func (s *AuthService) GenerateRefreshToken(id string) (string, error) {
	return s.signToken(&types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(RefreshTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		ID: id,
	})
}

func (s *AuthService) signToken(claims *types.TokenClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken verifies the signature and expiry and returns the claims.
// Verification is synchronous; callers branch on the returned error.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Refresh validates a refresh token and mints a new access token for the
// profile it names. The username is re-read from storage because refresh
// claims carry the id only.
func (s *AuthService) Refresh(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", ErrInvalidToken
	}

	var dev models.Dev
	err = s.db.WithContext(ctx).
		Select("id", "username").
		Where("id = ?", claims.ID).
		First(&dev).Error
	if err != nil {
		return "", ErrInvalidToken
	}

	return s.GenerateAccessToken(dev.ID, dev.Username)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
