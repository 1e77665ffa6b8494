package session

import (
	"context"
	"encoding/json"
	"time"

	"forum-moderator/internal/model"

	"github.com/redis/go-redis/v9"
)

// record is the persisted session payload.
type record struct {
	Viewer model.Viewer `json:"viewer"`
	Token  string       `json:"token"`
}

const sessionKey = "session:current"

// RedisStore persists the signed-in viewer and auth token between CLI
// invocations. It is the external session store the feed core reads
// its ViewerContext from.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore creates a store. ttl <= 0 means sessions never expire.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// Save stores the viewer and token, replacing any previous session.
func (s *RedisStore) Save(ctx context.Context, viewer model.Viewer, token string) error {
	b, err := json.Marshal(record{Viewer: viewer, Token: token})
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKey, b, s.ttl).Err()
}

// Current returns the signed-in viewer and token. ok is false when no
// session exists or it cannot be read; an absent session is not an
// error condition, it just means moderation is unavailable.
func (s *RedisStore) Current(ctx context.Context) (*model.Viewer, string, bool) {
	b, err := s.rdb.Get(ctx, sessionKey).Bytes()
	if err != nil {
		return nil, "", false
	}
	var rec record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, "", false
	}
	v := rec.Viewer
	return &v, rec.Token, true
}

// Clear removes the session.
func (s *RedisStore) Clear(ctx context.Context) error {
	return s.rdb.Del(ctx, sessionKey).Err()
}
