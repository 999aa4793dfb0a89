package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/internal/store"
	"github.com/ananta-labs/tabsync/internal/utils"
	"github.com/ananta-labs/tabsync/models"
)

// AuthConfig carries the secrets and token policy of the auth service.
type AuthConfig struct {
	// SecretHashKey keys the HMAC used to derive the stored account secret.
	SecretHashKey string

	// TokenSignKey signs issued JWT tokens (HMAC-SHA256).
	TokenSignKey string

	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string

	// TokenDuration is the lifetime of issued tokens.
	TokenDuration time.Duration
}

type authService struct {
	accounts store.AccountRepository
	cfg      AuthConfig
	logger   *logger.Logger
}

// NewAuthService constructs the standard [AuthService] over the account
// repository.
func NewAuthService(accounts store.AccountRepository, cfg AuthConfig, log *logger.Logger) AuthService {
	return &authService{accounts: accounts, cfg: cfg, logger: log}
}

func (a *authService) Register(ctx context.Context, accountKey, secret string) (models.Token, error) {
	if accountKey == "" || secret == "" {
		return models.Token{}, ErrInvalidCredentials
	}

	account := models.Account{
		AccountKey: accountKey,
		Secret:     a.hashSecret(secret),
		CreatedAt:  time.Now(),
	}

	created, err := a.accounts.CreateAccount(ctx, account)
	if err != nil {
		return models.Token{}, fmt.Errorf("register account: %w", err)
	}

	a.logger.Info().Str("account_key", created.AccountKey).Msg("account registered")

	return a.issueToken(created.AccountKey)
}

func (a *authService) Login(ctx context.Context, accountKey, secret string) (models.Token, error) {
	account, err := a.accounts.FindAccount(ctx, accountKey)
	if err != nil {
		if errors.Is(err, store.ErrNoAccountWasFound) {
			return models.Token{}, ErrInvalidCredentials
		}
		return models.Token{}, fmt.Errorf("login: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(account.Secret), []byte(a.hashSecret(secret))) != 1 {
		return models.Token{}, ErrInvalidCredentials
	}

	return a.issueToken(account.AccountKey)
}

func (a *authService) ParseToken(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.cfg.TokenSignKey, a.cfg.TokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, fmt.Errorf("parse token: %w", err)
	}
	return token, nil
}

func (a *authService) issueToken(accountKey string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.cfg.TokenIssuer, accountKey, a.cfg.TokenDuration, a.cfg.TokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// hashSecret derives the stored secret representation: HMAC-SHA256 over the
// cleartext, keyed by the server's secret hash key. Cleartext secrets never
// reach the database.
func (a *authService) hashSecret(secret string) string {
	mac := hmac.New(sha256.New, []byte(a.cfg.SecretHashKey))
	mac.Write([]byte(secret))
	return hex.EncodeToString(mac.Sum(nil))
}
