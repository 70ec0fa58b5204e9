package usecase

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bus-depot-backend/internal/model"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func (f *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	if user, ok := f.users[username]; ok {
		cp := *user
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Create(user *model.User) error {
	f.users[user.Username] = user
	return nil
}

const testSecret = "unit-test-secret"

func newAuthUsecase(t *testing.T) *AuthUsecase {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("depo123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*model.User{
		"depomaster": {ID: 7, Username: "depomaster", Password: string(hashed), Role: "depo-master"},
	}}
	return NewAuthUsecase(repo, testSecret)
}

func TestLogin_WrongPassword_ReturnsInvalidCredentials(t *testing.T) {
	uc := newAuthUsecase(t)

	token, role, err := uc.Login("depomaster", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
	assert.Empty(t, role)
}

func TestLogin_UnknownUser_ReturnsInvalidCredentials(t *testing.T) {
	uc := newAuthUsecase(t)

	_, _, err := uc.Login("nobody", "depo123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Success_IssuesRoleTokenWithOneHourExpiry(t *testing.T) {
	uc := newAuthUsecase(t)

	issuedAt := time.Now()
	token, role, err := uc.Login("depomaster", "depo123")
	require.NoError(t, err)
	assert.Equal(t, "depo-master", role)

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "depomaster", claims["username"])
	assert.Equal(t, "depo-master", claims["role"])
	assert.EqualValues(t, 7, claims["id"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, issuedAt.Add(time.Hour), exp.Time, 5*time.Second)
}
