package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registration and login.
type AuthUseCase struct {
	accountRepo repository.AccountRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(accountRepo repository.AccountRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{accountRepo: accountRepo, jwtCfg: jwtCfg}
}

func validRole(role string) bool {
	switch role {
	case entity.RoleLandlord, entity.RoleContractor, entity.RoleTenant:
		return true
	}
	return false // admin accounts are provisioned out of band
}

// Register creates an account: bcrypt-hashes the password and persists.
// Returns ErrEmailAlreadyExists when the email is taken.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AccountResponse, error) {
	if in.Email == "" || len(in.Password) < 8 || !validRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.accountRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	account := &entity.Account{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Phone:        in.Phone,
		Role:         in.Role,
		Status:       entity.AccountActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.accountRepo.Create(account); err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, err
	}
	return toAccountResponse(account), nil
}

// Login verifies email/password, issues a JWT, and returns token + account.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := uc.accountRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if account.Status != entity.AccountActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, account.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Account: *toAccountResponse(account),
	}, nil
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Phone:     a.Phone,
		Role:      a.Role,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
