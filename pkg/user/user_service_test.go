package user

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/entities"
	"MediTrack-Backend/pkg/jwt"
	"context"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepository struct {
	UsersByEmail map[string]*entities.User
	UsersByID    map[string]*entities.User
	Updated      *entities.User
}

var _ UserRepository = (*mockUserRepository)(nil)

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		UsersByEmail: map[string]*entities.User{},
		UsersByID:    map[string]*entities.User{},
	}
}

func (m *mockUserRepository) add(user *entities.User) {
	m.UsersByEmail[user.Email] = user
	m.UsersByID[user.ID.String()] = user
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	m.add(user)
	return nil
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	if user, ok := m.UsersByID[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	if user, ok := m.UsersByEmail[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	m.Updated = user
	m.add(user)
	return nil
}

type stubJWTService struct {
	token string
}

var _ jwt.JWTService = (*stubJWTService)(nil)

func (s *stubJWTService) GenerateTokenUser(userId string, role string) string { return s.token }

func (s *stubJWTService) ValidateTokenUser(token string) (*gojwt.Token, error) { return nil, nil }

func (s *stubJWTService) GetUserIDByToken(token string) (string, string, error) {
	return "", "", nil
}

func (s *stubJWTService) GenerateTokenResetPassword(data map[string]any, duration time.Duration) (string, error) {
	return s.token, nil
}

func (s *stubJWTService) ValidateTokenResetPassword(token string) (gojwt.MapClaims, error) {
	return gojwt.MapClaims{}, nil
}

func verifiedUser(t *testing.T, password string) *entities.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &entities.User{
		ID:         uuid.New(),
		Name:       "Asha",
		Email:      "asha@example.com",
		Password:   string(hashed),
		Role:       domain.RolePatient,
		IsVerified: true,
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newMockUserRepository()
	repo.add(verifiedUser(t, "supersecret"))
	service := NewUserService(repo, &stubJWTService{}, nil)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Someone Else",
		Email:    "asha@example.com",
		Password: "anothersecret",
		Role:     domain.RolePatient,
	})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	service := NewUserService(newMockUserRepository(), &stubJWTService{}, nil)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "supersecret",
		Role:     "admin",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestRegisterStoresHashedPasswordAndOTP(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo, &stubJWTService{}, nil)

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "supersecret",
		Role:     domain.RoleCaregiver,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleCaregiver, res.Role)

	stored := repo.UsersByEmail["asha@example.com"]
	if assert.NotNil(t, stored) {
		assert.NotEqual(t, "supersecret", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("supersecret")))
		assert.False(t, stored.IsVerified)
		assert.Len(t, stored.OTPCode, 6)
		assert.NotNil(t, stored.OTPExpiresAt)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMockUserRepository()
	repo.add(verifiedUser(t, "supersecret"))
	service := NewUserService(repo, &stubJWTService{}, nil)

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	service := NewUserService(newMockUserRepository(), &stubJWTService{}, nil)

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnverifiedUser(t *testing.T) {
	repo := newMockUserRepository()
	user := verifiedUser(t, "supersecret")
	user.IsVerified = false
	repo.add(user)
	service := NewUserService(repo, &stubJWTService{}, nil)

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "asha@example.com",
		Password: "supersecret",
	})

	assert.ErrorIs(t, err, domain.ErrUserNotVerified)
}

func TestLoginIssuesToken(t *testing.T) {
	repo := newMockUserRepository()
	repo.add(verifiedUser(t, "supersecret"))
	service := NewUserService(repo, &stubJWTService{token: "signed-token"}, nil)

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "asha@example.com",
		Password: "supersecret",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", res.Token)
	assert.Equal(t, domain.RolePatient, res.Role)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	repo := newMockUserRepository()
	user := verifiedUser(t, "supersecret")
	user.IsVerified = false
	user.OTPCode = "123456"
	expires := time.Now().Add(5 * time.Minute)
	user.OTPExpiresAt = &expires
	repo.add(user)
	service := NewUserService(repo, &stubJWTService{}, nil)

	err := service.VerifyOTP(context.Background(), domain.VerifyOTPRequest{
		Email: "asha@example.com",
		Code:  "654321",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidOTP)
	assert.False(t, user.IsVerified)
}

func TestVerifyOTPExpiredCode(t *testing.T) {
	repo := newMockUserRepository()
	user := verifiedUser(t, "supersecret")
	user.IsVerified = false
	user.OTPCode = "123456"
	expires := time.Now().Add(-1 * time.Minute)
	user.OTPExpiresAt = &expires
	repo.add(user)
	service := NewUserService(repo, &stubJWTService{}, nil)

	err := service.VerifyOTP(context.Background(), domain.VerifyOTPRequest{
		Email: "asha@example.com",
		Code:  "123456",
	})

	assert.ErrorIs(t, err, domain.ErrOTPExpired)
}

func TestVerifyOTPMarksVerifiedAndClearsCode(t *testing.T) {
	repo := newMockUserRepository()
	user := verifiedUser(t, "supersecret")
	user.IsVerified = false
	user.OTPCode = "123456"
	expires := time.Now().Add(5 * time.Minute)
	user.OTPExpiresAt = &expires
	repo.add(user)
	service := NewUserService(repo, &stubJWTService{}, nil)

	err := service.VerifyOTP(context.Background(), domain.VerifyOTPRequest{
		Email: "asha@example.com",
		Code:  "123456",
	})

	assert.NoError(t, err)
	assert.True(t, user.IsVerified)
	assert.Empty(t, user.OTPCode)
	assert.Nil(t, user.OTPExpiresAt)
}

func TestVerifyOTPAlreadyVerified(t *testing.T) {
	repo := newMockUserRepository()
	repo.add(verifiedUser(t, "supersecret"))
	service := NewUserService(repo, &stubJWTService{}, nil)

	err := service.VerifyOTP(context.Background(), domain.VerifyOTPRequest{
		Email: "asha@example.com",
		Code:  "123456",
	})

	assert.ErrorIs(t, err, domain.ErrUserAlreadyVerified)
}
