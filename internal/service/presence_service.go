package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/pantheon-service/internal/domain"
	"github.com/spec-kit/pantheon-service/internal/persistence"
)

const presenceTTL = 24 * time.Hour

// PresenceService tracks Connecté/Déconnecté markers in Redis. Presence is
// advisory: failures are logged and never block the auth flow.
type PresenceService struct {
	redis  *persistence.Redis
	logger *zap.Logger
}

// NewPresenceService creates the service.
func NewPresenceService(redis *persistence.Redis, logger *zap.Logger) *PresenceService {
	return &PresenceService{redis: redis, logger: logger}
}

func presenceKey(userID int64) string {
	return fmt.Sprintf("presence:%d", userID)
}

// MarkOnline flags the user as connected. The marker expires on its own so a
// crashed client eventually reads as disconnected.
func (p *PresenceService) MarkOnline(ctx context.Context, userID int64) {
	if p == nil || p.redis == nil || p.redis.Client == nil {
		return
	}
	if err := p.redis.Client.Set(ctx, presenceKey(userID), string(domain.PresenceOnline), presenceTTL).Err(); err != nil {
		p.logger.Debug("presence mark online failed", zap.Int64("user_id", userID), zap.Error(err))
	}
}

// MarkOffline clears the connected marker.
func (p *PresenceService) MarkOffline(ctx context.Context, userID int64) {
	if p == nil || p.redis == nil || p.redis.Client == nil {
		return
	}
	if err := p.redis.Client.Del(ctx, presenceKey(userID)).Err(); err != nil {
		p.logger.Debug("presence mark offline failed", zap.Int64("user_id", userID), zap.Error(err))
	}
}

// Status returns the user presence, defaulting to disconnected when the
// marker is absent or Redis is unreachable.
func (p *PresenceService) Status(ctx context.Context, userID int64) domain.Presence {
	if p == nil || p.redis == nil || p.redis.Client == nil {
		return domain.PresenceOffline
	}
	val, err := p.redis.Client.Get(ctx, presenceKey(userID)).Result()
	if err != nil || val != string(domain.PresenceOnline) {
		return domain.PresenceOffline
	}
	return domain.PresenceOnline
}
