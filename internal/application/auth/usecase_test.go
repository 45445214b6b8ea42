package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/auth"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

type fakeAccountRepo struct {
	repository.AccountRepository
	existing *entity.Account
	findErr  error
	created  []*entity.Account
}

func (f *fakeAccountRepo) FindByEmail(string) (*entity.Account, error) {
	return f.existing, f.findErr
}

func (f *fakeAccountRepo) Create(a *entity.Account) error {
	f.created = append(f.created, a)
	return nil
}

func newAuthUC(repo *fakeAccountRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "rentflow-test",
	})
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:    "terry@example.com",
		Password: "hunter2hunter2",
		Name:     "Terry Tenant",
		Role:     entity.RoleTenant,
	}
}

func TestRegister_CreatesActiveAccount(t *testing.T) {
	repo := &fakeAccountRepo{}
	resp, err := newAuthUC(repo).Register(registerRequest())
	require.NoError(t, err)

	assert.Equal(t, "terry@example.com", resp.Email)
	assert.Equal(t, entity.RoleTenant, resp.Role)
	assert.Equal(t, entity.AccountActive, resp.Status)
	require.Len(t, repo.created, 1)
	assert.NotEqual(t, "hunter2hunter2", repo.created[0].PasswordHash)
}

func TestRegister_TakenEmailRejected(t *testing.T) {
	repo := &fakeAccountRepo{existing: &entity.Account{ID: "acc-1"}}
	_, err := newAuthUC(repo).Register(registerRequest())

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Empty(t, repo.created)
}

func TestRegister_EmailLookupFailurePropagates(t *testing.T) {
	lookupErr := errors.New("connection refused")
	repo := &fakeAccountRepo{findErr: lookupErr}
	_, err := newAuthUC(repo).Register(registerRequest())

	assert.ErrorIs(t, err, lookupErr, "a failed lookup must not read as email-available")
	assert.Empty(t, repo.created)
}

func TestRegister_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
	}{
		{"empty email", func(r *dto.RegisterRequest) { r.Email = "" }},
		{"short password", func(r *dto.RegisterRequest) { r.Password = "short" }},
		{"admin role", func(r *dto.RegisterRequest) { r.Role = entity.RoleAdmin }},
		{"unknown role", func(r *dto.RegisterRequest) { r.Role = "janitor" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := registerRequest()
			tc.mutate(&req)
			_, err := newAuthUC(&fakeAccountRepo{}).Register(req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestLogin_IssuesToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeAccountRepo{existing: &entity.Account{
		ID:           "acc-1",
		Email:        "terry@example.com",
		PasswordHash: string(hash),
		Role:         entity.RoleTenant,
		Status:       entity.AccountActive,
	}}

	resp, err := newAuthUC(repo).Login(dto.LoginRequest{
		Email:    "terry@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "acc-1", resp.Account.ID)
}

func TestLogin_WrongPasswordUnauthorized(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeAccountRepo{existing: &entity.Account{
		PasswordHash: string(hash),
		Status:       entity.AccountActive,
	}}

	_, err = newAuthUC(repo).Login(dto.LoginRequest{Email: "terry@example.com", Password: "nope"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_SuspendedAccountForbidden(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeAccountRepo{existing: &entity.Account{
		PasswordHash: string(hash),
		Status:       entity.AccountSuspended,
	}}

	_, err = newAuthUC(repo).Login(dto.LoginRequest{Email: "terry@example.com", Password: "hunter2hunter2"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
