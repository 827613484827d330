package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lshigami/mockview/internal/model"
	apperrors "github.com/lshigami/mockview/internal/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "interview_session:"

// SessionStore keeps in-flight interview sessions. Sessions expire after the configured TTL
// measured from the last save.
type SessionStore interface {
	Save(ctx context.Context, session *model.InterviewSession) error
	Get(ctx context.Context, id string) (*model.InterviewSession, error)
	Delete(ctx context.Context, id string) error
}

// NewSessionStore uses redis when a client is configured and process memory otherwise.
func NewSessionStore(rdb *redis.Client, ttl time.Duration) SessionStore {
	if rdb == nil {
		return NewMemorySessionStore(ttl)
	}
	return &redisSessionStore{rdb: rdb, ttl: ttl}
}

type redisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func (s *redisSessionStore) Save(ctx context.Context, session *model.InterviewSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return s.rdb.Set(ctx, sessionKeyPrefix+session.ID, data, s.ttl).Err()
}

func (s *redisSessionStore) Get(ctx context.Context, id string) (*model.InterviewSession, error) {
	data, err := s.rdb.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("session %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}

	var session model.InterviewSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

type memorySessionStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemorySessionStore keeps encoded sessions in a map so callers never share pointers
// with the store.
func NewMemorySessionStore(ttl time.Duration) SessionStore {
	return &memorySessionStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *memorySessionStore) Save(_ context.Context, session *model.InterviewSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entry := memoryEntry{data: data}
	if s.ttl > 0 {
		entry.expiresAt = s.now().Add(s.ttl)
	}
	s.entries[session.ID] = entry
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, id string) (*model.InterviewSession, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok || (!entry.expiresAt.IsZero() && s.now().After(entry.expiresAt)) {
		if ok {
			s.mu.Lock()
			delete(s.entries, id)
			s.mu.Unlock()
		}
		return nil, fmt.Errorf("session %s: %w", id, apperrors.ErrNotFound)
	}

	var session model.InterviewSession
	if err := json.Unmarshal(entry.data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &session, nil
}

func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}
