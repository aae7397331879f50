package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"smart-clinic-portal/internal/domain/entity"
	domainRepo "smart-clinic-portal/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const sessionKeyPrefix = "clinic:session:"

// =============================================================================
// Redis
// =============================================================================

// redisSessionRepository stores the session as two plain keys, the way the
// browser kept "token" and "userRole" in local storage. Keys never expire.
type redisSessionRepository struct {
	client    *redis.Client
	namespace string
	log       *logrus.Logger
}

func NewRedisSessionRepository(client *redis.Client, namespace string, log *logrus.Logger) domainRepo.SessionRepository {
	if namespace == "" {
		namespace = "default"
	}
	return &redisSessionRepository{client: client, namespace: namespace, log: log}
}

func (r *redisSessionRepository) tokenKey() string {
	return sessionKeyPrefix + r.namespace + ":token"
}

func (r *redisSessionRepository) roleKey() string {
	return sessionKeyPrefix + r.namespace + ":role"
}

func (r *redisSessionRepository) Get(ctx context.Context) (entity.Session, error) {
	values, err := r.client.MGet(ctx, r.tokenKey(), r.roleKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.Session{}, nil
		}
		return entity.Session{}, fmt.Errorf("failed to read session: %w", err)
	}

	var session entity.Session
	if token, ok := values[0].(string); ok {
		session.Token = token
	}
	if role, ok := values[1].(string); ok {
		session.Role = entity.Role(role)
	}
	return session, nil
}

func (r *redisSessionRepository) Save(ctx context.Context, session entity.Session) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.tokenKey(), session.Token, 0)
		pipe.Set(ctx, r.roleKey(), string(session.Role), 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	r.log.WithFields(logrus.Fields{
		"namespace": r.namespace,
		"role":      session.Role,
	}).Debug("session stored")
	return nil
}

func (r *redisSessionRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.tokenKey(), r.roleKey()).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// =============================================================================
// Memory
// =============================================================================

type memorySessionRepository struct {
	mu      sync.RWMutex
	session entity.Session
}

// NewMemorySessionRepository keeps the session in process, starting from seed
func NewMemorySessionRepository(seed entity.Session) domainRepo.SessionRepository {
	return &memorySessionRepository{session: seed}
}

func (r *memorySessionRepository) Get(ctx context.Context) (entity.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.session, nil
}

func (r *memorySessionRepository) Save(ctx context.Context, session entity.Session) error {
	r.mu.Lock()
	r.session = session
	r.mu.Unlock()
	return nil
}

func (r *memorySessionRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	r.session = entity.Session{}
	r.mu.Unlock()
	return nil
}
