package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jobtrail/jobtrail/pkg/apperrors"
)

const keyPrefix = "jobtrail:session:"

// Store keeps opaque session IDs in Redis, mapped to user IDs with a
// sliding TTL.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Create issues a fresh session ID for the user.
func (s *Store) Create(ctx context.Context, userID uint) (string, error) {
	sessionID := uuid.NewString()
	key := keyPrefix + sessionID

	if err := s.rdb.Set(ctx, key, strconv.FormatUint(uint64(userID), 10), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return sessionID, nil
}

// Get resolves a session ID to a user ID and refreshes the TTL.
// Unknown or expired sessions come back as apperrors.Unauthorized.
func (s *Store) Get(ctx context.Context, sessionID string) (uint, error) {
	key := keyPrefix + sessionID

	val, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, apperrors.Unauthorized
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read session: %w", err)
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, apperrors.Unauthorized
	}

	// Sliding expiry: active users stay logged in.
	_ = s.rdb.Expire(ctx, key, s.ttl).Err()

	return uint(userID), nil
}

// Delete revokes a session. Deleting a missing session is not an error.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, keyPrefix+sessionID).Err()
}
