package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/reviewhub-api/apperrors"
	"github.com/reviewhub-api/config"
	"github.com/reviewhub-api/dto"
	"github.com/reviewhub-api/models"
	"github.com/reviewhub-api/repositories"
	"github.com/reviewhub-api/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var authUserRepo = repositories.NewUserRepository()

// Signup registers a user (or re-registers an existing one) and sends a
// fresh confirmation code to their email address. Only the bcrypt hash of
// the code is stored.
func Signup(req dto.SignupRequest) error {
	if err := utils.ValidateUsername(req.Username); err != nil {
		return err
	}

	user, err := authUserRepo.FindByUsername(req.Username)
	switch {
	case err == nil:
		// Re-signup with the same username+email pair re-issues a code;
		// a clash on just one of the two fields is an error.
		if user.Email != req.Email {
			return apperrors.Validationf("username %q already taken", req.Username)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if _, err := authUserRepo.FindByEmail(req.Email); err == nil {
			return apperrors.Validationf("email %q already registered", req.Email)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		user, err = authUserRepo.Create(models.User{
			Username: req.Username,
			Email:    req.Email,
			Role:     models.RoleUser,
		})
		if err != nil {
			return err
		}
	default:
		return err
	}

	code := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.ConfirmationCode = string(hash)
	if err := authUserRepo.Update(user); err != nil {
		return err
	}

	return mailer.SendConfirmationCode(user.Email, code)
}

// GetToken exchanges a confirmation code for an access token
func GetToken(req dto.TokenRequest) (*dto.TokenResponse, error) {
	user, err := authUserRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("user %q", req.Username)
		}
		return nil, err
	}

	if user.ConfirmationCode == "" {
		return nil, apperrors.Validationf("no confirmation code issued for %q", req.Username)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.ConfirmationCode), []byte(req.ConfirmationCode)); err != nil {
		return nil, apperrors.Validationf("invalid confirmation code")
	}

	token, err := GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}

// GenerateToken generates a new JWT token for a user
func GenerateToken(user models.User) (string, error) {
	secretKey := config.JWTSecret()
	if secretKey == "" {
		return "", errors.New("JWT_SECRET not set in environment")
	}

	claims := dto.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

// ValidateToken validates a JWT token and returns claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := config.JWTSecret()
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
