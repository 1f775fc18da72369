package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"budget-tracker/internal/core/domain"
	"budget-tracker/internal/core/port/mocks"
	"budget-tracker/internal/core/validate"
)

func newAccountUseCase(t *testing.T) (*AccountUseCase, *mocks.MockAccountRepository) {
	repo := mocks.NewMockAccountRepository(t)
	svc := NewAccountUseCase(repo)
	svc.cost = bcrypt.MinCost
	return svc, repo
}

func registrationForm() domain.RegistrationForm {
	return domain.RegistrationForm{
		Handle:          "otilia",
		Email:           "otilia@example.com",
		Password:        "testpass123",
		ConfirmPassword: "testpass123",
	}
}

func TestRegister(t *testing.T) {
	svc, repo := newAccountUseCase(t)

	repo.EXPECT().
		CreateAccount(mock.Anything, mock.AnythingOfType("*domain.Account")).
		Run(func(ctx context.Context, acc *domain.Account) {
			acc.ID = 1
		}).
		Return(nil)

	acc, err := svc.Register(context.Background(), registrationForm())
	require.NoError(t, err)

	assert.Equal(t, int64(1), acc.ID)
	assert.Equal(t, "otilia", acc.Handle)
	assert.NotEqual(t, "testpass123", acc.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte("testpass123")))
}

func TestRegister_Duplicate(t *testing.T) {
	svc, repo := newAccountUseCase(t)

	repo.EXPECT().CreateAccount(mock.Anything, mock.Anything).Return(domain.ErrDuplicateAccount)

	_, err := svc.Register(context.Background(), registrationForm())
	assert.ErrorIs(t, err, domain.ErrDuplicateAccount)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	svc, _ := newAccountUseCase(t)

	form := registrationForm()
	form.ConfirmPassword = "different123"

	_, err := svc.Register(context.Background(), form)
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validate.ReasonPasswordMismatch, verr.Reason)
}

func TestAuthenticate(t *testing.T) {
	svc, repo := newAccountUseCase(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("testpass123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.Account{ID: 1, Handle: "otilia", PasswordHash: string(hash)}

	repo.EXPECT().GetAccountByHandle(mock.Anything, "otilia").Return(stored, nil)
	repo.EXPECT().GetAccountByHandle(mock.Anything, "nobody").Return(nil, nil)

	acc, err := svc.Authenticate(context.Background(), "otilia", "testpass123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), acc.ID)

	_, err = svc.Authenticate(context.Background(), "otilia", "wrongpassword")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody", "wrongpassword")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticate_MissingFields(t *testing.T) {
	svc, _ := newAccountUseCase(t)

	_, err := svc.Authenticate(context.Background(), "otilia", "")
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validate.ReasonLoginRequired, verr.Reason)
}
