package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/internal/store"
	"github.com/MKhiriev/go-project-keeper/models"
)

type accountService struct {
	accounts store.AccountStore
	notifier *Notifier
	now      func() time.Time

	logger *logger.Logger
}

func NewAccountService(accounts store.AccountStore, notifier *Notifier, logger *logger.Logger) AccountService {
	return &accountService{
		accounts: accounts,
		notifier: notifier,
		now:      time.Now,
		logger:   logger,
	}
}

// CreateUser registers a new account and signs it in.
func (a *accountService) CreateUser(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", ErrInvalidArgument)
	}

	accounts, err := a.accounts.GetAccounts(ctx)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}

	key := models.AccountKey(username)
	if _, exists := accounts[key]; exists {
		return fmt.Errorf("%w: %s", ErrUserAlreadyExists, username)
	}

	accounts[key] = models.Account{
		Username:  username,
		Pass:      password,
		CreatedAt: models.Timestamp(a.now()),
	}
	if err = a.accounts.SaveAccounts(ctx, accounts); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}

	a.logger.Info().Str("func", "accountService.CreateUser").Str("username", username).Msg("user created")
	return a.startSession(ctx, username)
}

func (a *accountService) SignIn(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", ErrInvalidArgument)
	}

	accounts, err := a.accounts.GetAccounts(ctx)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}

	account, ok := accounts[models.AccountKey(username)]
	if !ok || account.Pass != password {
		return ErrWrongCredentials
	}

	return a.startSession(ctx, account.Username)
}

func (a *accountService) SignOut(ctx context.Context) error {
	if err := a.accounts.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	a.notifier.Publish(models.UserChanged(""))
	return nil
}

func (a *accountService) CurrentUser(ctx context.Context) (string, error) {
	session, err := a.accounts.GetSession(ctx)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return "", nil
	}
	return session.Username, nil
}

func (a *accountService) startSession(ctx context.Context, username string) error {
	if err := a.accounts.SaveSession(ctx, models.Session{Username: username}); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	a.notifier.Publish(models.UserChanged(username))
	return nil
}
