package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"dress-diary/bridge"
	"dress-diary/models"
	"dress-diary/repository"
	"dress-diary/session"
)

type tokenEntry struct {
	session session.Context
	expires time.Time
}

// AuthService signs users up and in and resolves bearer tokens to sessions
type AuthService struct {
	accounts bridge.Accounts
	store    bridge.Store
	ttl      time.Duration
	now      func() time.Time

	mu     sync.RWMutex
	tokens map[string]tokenEntry
}

// NewAuthService creates a new AuthService
func NewAuthService(accounts bridge.Accounts, store bridge.Store, ttl time.Duration) *AuthService {
	return &AuthService{
		accounts: accounts,
		store:    store,
		ttl:      ttl,
		now:      time.Now,
		tokens:   make(map[string]tokenEntry),
	}
}

// SignUp creates a user
func (s *AuthService) SignUp(ctx context.Context, req models.SignUpRequest) error {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Name) == "" || req.Password == "" {
		return ErrInvalidSignUp
	}
	return s.accounts.CreateUser(ctx, strings.TrimSpace(req.Username), strings.TrimSpace(req.Name), req.Password)
}

// Login checks credentials, advances the login streak and issues a token
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.accounts.LoginUser(ctx, strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	sess, err := session.New(user.Username)
	if err != nil {
		return nil, err
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = tokenEntry{session: sess, expires: s.now().Add(s.ttl)}
	s.mu.Unlock()

	log.Infof("✓ %s logged in (streak %d)", user.Username, user.Streak)
	return &models.LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
		Streak:   user.Streak,
	}, nil
}

// Authenticate resolves a bearer token to its session
func (s *AuthService) Authenticate(token string) (session.Context, error) {
	s.mu.RLock()
	entry, ok := s.tokens[token]
	s.mu.RUnlock()

	if !ok || !s.now().Before(entry.expires) {
		return session.Context{}, ErrUnauthorized
	}
	return entry.session, nil
}

// Logout revokes a token
func (s *AuthService) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, token)
}

// PruneExpired removes expired tokens and returns how many were removed
func (s *AuthService) PruneExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	pruned := 0
	for token, entry := range s.tokens {
		if !now.Before(entry.expires) {
			delete(s.tokens, token)
			pruned++
		}
	}
	return pruned
}

// Profile returns the profile of user with its closet statistics
func (s *AuthService) Profile(ctx context.Context, user string) (*models.ProfileResponse, error) {
	account, err := s.accounts.RecoverUser(ctx, user)
	if err != nil {
		return nil, err
	}
	items, err := s.store.ClothingItemCount(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}
	outfits, err := s.store.OutfitCount(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to count outfits: %w", err)
	}

	return &models.ProfileResponse{
		Username:    account.Username,
		Name:        account.Name,
		Streak:      account.Streak,
		ItemCount:   items,
		OutfitCount: outfits,
		DarkMode:    account.DarkMode,
	}, nil
}

// SetDarkMode stores the theme preference of user
func (s *AuthService) SetDarkMode(ctx context.Context, user string, enabled bool) error {
	return s.accounts.SetDarkMode(ctx, user, enabled)
}
