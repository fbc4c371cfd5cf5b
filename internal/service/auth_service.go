package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/pantheon-service/internal/auth"
	"github.com/spec-kit/pantheon-service/internal/config"
	"github.com/spec-kit/pantheon-service/internal/domain"
	"github.com/spec-kit/pantheon-service/internal/events"
	"github.com/spec-kit/pantheon-service/internal/repository"
	apperrors "github.com/spec-kit/pantheon-service/pkg/util"
)

const defaultAvatarURL = "https://sbcf.fr/wp-content/uploads/2018/03/sbcf-default-avatar.png"

// RegisterInput carries validated registration fields.
type RegisterInput struct {
	GodID    int64
	Pseudo   string
	Email    string
	Password string
	Avatar   string
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	gods       repository.GodRepository
	tokenMgr   *auth.TokenManager
	presence   *PresenceService
	dispatcher events.Dispatcher
	bcryptCost int
	now        func() time.Time
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	GodRepo    repository.GodRepository
	Presence   *PresenceService
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service. The signing secret and TTL come from
// configuration and are fixed for the process lifetime.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		gods:       deps.GodRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		presence:   deps.Presence,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
		now:        time.Now,
	}
}

// Register creates a new account attached to an existing god.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewValidationError("Un utilisateur avec cet email existe déjà.", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if _, err := s.gods.GetByID(ctx, input.GodID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValidationError("Le dieu avec cet ID n'existe pas.", nil)
		}
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	avatar := input.Avatar
	if avatar == "" {
		avatar = defaultAvatarURL
	}

	user := &domain.User{
		GodID:        input.GodID,
		Avatar:       avatar,
		Pseudo:       input.Pseudo,
		Email:        input.Email,
		Role:         domain.RoleUser,
		Status:       domain.AccountActive,
		Subscription: domain.NotSubscribed,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventUserRegistered, user.ID, events.UserRegisteredPayload{
		UserID: user.ID,
		Pseudo: user.Pseudo,
		GodID:  user.GodID,
	})
	return user, nil
}

// Login authenticates by pseudo and password and issues a session token.
// Order matters: account lookup, suspension gate, credential check, then
// issuance — a suspended account never gets a token even with correct
// credentials.
func (s *AuthService) Login(ctx context.Context, pseudo, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByPseudo(ctx, pseudo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewNotFound("Utilisateur non trouvé")
		}
		return nil, "", time.Time{}, err
	}

	if err := auth.CheckAccountStatus(user.Status, user.BannedUntil, s.now()); err != nil {
		return nil, "", time.Time{}, err
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("Mot de passe incorrect")
	}

	token, expiresAt, err := s.tokenMgr.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	s.presence.MarkOnline(ctx, user.ID)
	return user, token, expiresAt, nil
}

// Logout marks the user disconnected. The token itself is stateless and
// simply expires; the client discards its cookie.
func (s *AuthService) Logout(ctx context.Context, userID int64) {
	s.presence.MarkOffline(ctx, userID)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, actorID int64, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		Timestamp: s.now(),
		Payload:   payload,
	})
}
