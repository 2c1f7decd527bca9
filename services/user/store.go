package user

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"studyhub/models"
	"studyhub/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// pendingTTL bounds how long an in-flight registration may live, across all
// stages. The per-code 10-minute expiry is checked separately at verify time.
const pendingTTL = 30 * time.Minute

// PendingStore holds in-flight registrations keyed by email. Last write wins;
// the workflow is single-session by construction and needs no locking.
type PendingStore interface {
	// Get returns the pending registration for email, or (nil, nil) when absent.
	Get(ctx context.Context, email string) (*models.PendingRegistration, error)
	// Save stores (or overwrites) the pending registration for email.
	Save(ctx context.Context, email string, reg models.PendingRegistration, ttl time.Duration) error
	// Delete removes the pending registration for email.
	Delete(ctx context.Context, email string) error
	// All returns every live pending registration.
	All(ctx context.Context) ([]models.PendingRegistration, error)
}

const pendingKeyPrefix = "pending:"

// RedisPendingStore is the production PendingStore.
type RedisPendingStore struct {
	client *redis.Client
}

func NewRedisPendingStore(client *redis.Client) *RedisPendingStore {
	return &RedisPendingStore{client: client}
}

func (s *RedisPendingStore) Get(ctx context.Context, email string) (*models.PendingRegistration, error) {
	data, err := s.client.Get(ctx, pendingKeyPrefix+email).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		utils.GetLogger().Error("Failed to get pending registration", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	var reg models.PendingRegistration
	if err := json.Unmarshal([]byte(data), &reg); err != nil {
		utils.GetLogger().Error("Failed to unmarshal pending registration", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return &reg, nil
}

func (s *RedisPendingStore) Save(ctx context.Context, email string, reg models.PendingRegistration, ttl time.Duration) error {
	data, err := json.Marshal(reg)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, pendingKeyPrefix+email, data, ttl).Err(); err != nil {
		utils.GetLogger().Error("Failed to save pending registration", zap.String("email", email), zap.Error(err))
		return err
	}
	return nil
}

func (s *RedisPendingStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, pendingKeyPrefix+email).Err(); err != nil {
		utils.GetLogger().Error("Failed to delete pending registration", zap.String("email", email), zap.Error(err))
		return err
	}
	return nil
}

func (s *RedisPendingStore) All(ctx context.Context) ([]models.PendingRegistration, error) {
	var out []models.PendingRegistration
	iter := s.client.Scan(ctx, 0, pendingKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		email := strings.TrimPrefix(iter.Val(), pendingKeyPrefix)
		reg, err := s.Get(ctx, email)
		if err != nil {
			return nil, err
		}
		if reg != nil {
			out = append(out, *reg)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// MemoryPendingStore is an in-process PendingStore used in tests and
// single-node development.
type MemoryPendingStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	reg       models.PendingRegistration
	expiresAt time.Time
}

func NewMemoryPendingStore() *MemoryPendingStore {
	return &MemoryPendingStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryPendingStore) Get(_ context.Context, email string) (*models.PendingRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[email]
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, email)
		return nil, nil
	}
	reg := entry.reg
	return &reg, nil
}

func (s *MemoryPendingStore) Save(_ context.Context, email string, reg models.PendingRegistration, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[email] = memoryEntry{reg: reg, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryPendingStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, email)
	return nil
}

func (s *MemoryPendingStore) All(_ context.Context) ([]models.PendingRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var out []models.PendingRegistration
	for email, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, email)
			continue
		}
		out = append(out, entry.reg)
	}
	return out, nil
}
