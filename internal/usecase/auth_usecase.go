package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bus-depot-backend/internal/repository"
)

// ErrInvalidCredentials is deliberately the same for an unknown username
// and a wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")

const tokenTTL = time.Hour

type AuthUsecase struct {
	repo   repository.UserRepository
	secret []byte
}

func NewAuthUsecase(repo repository.UserRepository, secret string) *AuthUsecase {
	return &AuthUsecase{repo: repo, secret: []byte(secret)}
}

// Login verifies the bcrypt hash and issues an HS256 token carrying id,
// username and role, expiring one hour from issuance.
func (u *AuthUsecase) Login(username, password string) (token, role string, err error) {
	user, err := u.repo.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", ErrInvalidCredentials
	}
	if err != nil {
		return "", "", fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return "", "", fmt.Errorf("sign token: %w", err)
	}

	return signed, user.Role, nil
}
