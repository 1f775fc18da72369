package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"budget-tracker/internal/core/domain"
	"budget-tracker/internal/core/port"
	"budget-tracker/internal/core/validate"
)

// AccountUseCase registers accounts and checks credentials. Passwords are
// stored as bcrypt hashes only.
type AccountUseCase struct {
	repo port.AccountRepository
	cost int
}

// NewAccountUseCase creates a new usecase hashing with bcrypt.DefaultCost.
func NewAccountUseCase(repo port.AccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo, cost: bcrypt.DefaultCost}
}

// Register validates the form and stores a new account.
func (u *AccountUseCase) Register(ctx context.Context, form domain.RegistrationForm) (*domain.Account, error) {
	if err := validate.Registration(form); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), u.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	acc := &domain.Account{
		Handle:       strings.TrimSpace(form.Handle),
		Email:        strings.TrimSpace(form.Email),
		PasswordHash: string(hash),
	}
	if err = u.repo.CreateAccount(ctx, acc); err != nil {
		if errors.Is(err, domain.ErrDuplicateAccount) {
			return nil, err
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	return acc, nil
}

// Authenticate returns the account for handle when password matches. Unknown
// handles and wrong passwords are indistinguishable to the caller.
func (u *AccountUseCase) Authenticate(ctx context.Context, handle, password string) (*domain.Account, error) {
	if err := validate.Login(handle, password); err != nil {
		return nil, err
	}
	acc, err := u.repo.GetAccountByHandle(ctx, strings.TrimSpace(handle))
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	if acc == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return acc, nil
}
