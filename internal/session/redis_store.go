package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisStore keeps sessions in Redis with a TTL, so they survive a server
// restart and can be shared by multiple instances.
type RedisStore struct{ Client *redis.Client }

func NewRedisStore(client *redis.Client) *RedisStore { return &RedisStore{Client: client} }

// Save stores the identity as JSON under session:<sid> with the given TTL.
func (s *RedisStore) Save(ctx context.Context, sid string, id Identity, ttl time.Duration) error {
	body, err := json.Marshal(id)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, keyPrefix+sid, body, ttl).Err()
}

// Lookup resolves a session id to its identity.  Redis expiry handles TTL;
// a missing key maps to ErrNotFound.
func (s *RedisStore) Lookup(ctx context.Context, sid string) (Identity, error) {
	body, err := s.Client.Get(ctx, keyPrefix+sid).Bytes()
	if err == redis.Nil {
		return Identity{}, ErrNotFound
	}
	if err != nil {
		return Identity{}, err
	}
	var id Identity
	if err := json.Unmarshal(body, &id); err != nil {
		return Identity{}, err
	}
	return id, nil
}

// Delete removes the session.  Deleting an unknown id is not an error.
func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	return s.Client.Del(ctx, keyPrefix+sid).Err()
}
