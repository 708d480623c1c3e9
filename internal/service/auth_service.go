package service

import (
	"context"
	"fmt"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
	"go.uber.org/zap"
)

type authAPI interface {
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	Signup(ctx context.Context, name, email, password string) (string, *model.User, error)
}

type sessionStore interface {
	Load(ctx context.Context, chatID int64) (*model.Session, error)
	Save(ctx context.Context, chatID int64, token string, user *model.User) error
	Clear(ctx context.Context, chatID int64) error
}

// AuthService logs chats in and out against the backend and keeps the
// session store in sync.
type AuthService struct {
	api      authAPI
	sessions sessionStore
	logger   *zap.Logger
}

func NewAuthService(api authAPI, sessions sessionStore, logger *zap.Logger) *AuthService {
	return &AuthService{
		api:      api,
		sessions: sessions,
		logger:   logger,
	}
}

// Current returns the chat's session, or nil when logged out.
func (s *AuthService) Current(ctx context.Context, chatID int64) (*model.Session, error) {
	return s.sessions.Load(ctx, chatID)
}

// Login authenticates and persists the token/user pair for the chat.
func (s *AuthService) Login(ctx context.Context, chatID int64, email, password string) (*model.User, error) {
	token, user, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := s.sessions.Save(ctx, chatID, token, user); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.logger.Info("User logged in",
		zap.Int64("chat_id", chatID),
		zap.String("user_id", user.ID),
	)

	return user, nil
}

// Signup registers a new account. The backend logs the account in on
// signup, so the session is stored the same way as for Login.
func (s *AuthService) Signup(ctx context.Context, chatID int64, name, email, password string) (*model.User, error) {
	token, user, err := s.api.Signup(ctx, name, email, password)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	if err := s.sessions.Save(ctx, chatID, token, user); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.logger.Info("User signed up",
		zap.Int64("chat_id", chatID),
		zap.String("user_id", user.ID),
	)

	return user, nil
}

// Logout drops the token and user record for the chat.
func (s *AuthService) Logout(ctx context.Context, chatID int64) error {
	if err := s.sessions.Clear(ctx, chatID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.logger.Info("User logged out", zap.Int64("chat_id", chatID))
	return nil
}
