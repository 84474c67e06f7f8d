package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const guestCartKeyPrefix = "guestcart"

// GuestCartStore holds guest-scope carts in Redis: one string entry per
// storefront session containing the serialized item list. Reads and writes
// are synchronous; a consumed cart is deleted, never overwritten with an
// empty list.
type GuestCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewGuestCartStore(client *redis.Client, ttl time.Duration) *GuestCartStore {
	return &GuestCartStore{client: client, ttl: ttl}
}

func guestCartKey(sessionID string) string {
	return guestCartKeyPrefix + ":" + sessionID
}

// Read returns the raw stored payload, or "" when no entry exists.
func (s *GuestCartStore) Read(ctx context.Context, sessionID string) (string, error) {

	payload, err := s.client.Get(ctx, guestCartKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}

		return "", fmt.Errorf("failed to read guest cart %s: %w", sessionID, err)
	}

	return payload, nil
}

func (s *GuestCartStore) Write(ctx context.Context, sessionID string, payload string) error {

	if err := s.client.Set(ctx, guestCartKey(sessionID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write guest cart %s: %w", sessionID, err)
	}

	return nil
}

func (s *GuestCartStore) Delete(ctx context.Context, sessionID string) error {

	if err := s.client.Del(ctx, guestCartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete guest cart %s: %w", sessionID, err)
	}

	return nil
}
