package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisLikedStore keeps one Redis set of liked pet IDs per user. The set is
// advisory toggle state; the like counter on the pet record stays
// authoritative.
type RedisLikedStore struct {
	client *redis.Client
}

// NewRedisLikedStore creates a Redis-backed liked store
func NewRedisLikedStore(client *redis.Client) *RedisLikedStore {
	return &RedisLikedStore{client: client}
}

func likedKey(userID string) string {
	return fmt.Sprintf("liked:%s", userID)
}

// Add marks a pet as liked by the user
func (s *RedisLikedStore) Add(ctx context.Context, userID, petID string) error {
	if err := s.client.SAdd(ctx, likedKey(userID), petID).Err(); err != nil {
		return fmt.Errorf("failed to add liked pet: %w", err)
	}
	return nil
}

// Remove clears a pet from the user's liked set
func (s *RedisLikedStore) Remove(ctx context.Context, userID, petID string) error {
	if err := s.client.SRem(ctx, likedKey(userID), petID).Err(); err != nil {
		return fmt.Errorf("failed to remove liked pet: %w", err)
	}
	return nil
}

// Contains reports whether the user has liked the pet
func (s *RedisLikedStore) Contains(ctx context.Context, userID, petID string) (bool, error) {
	liked, err := s.client.SIsMember(ctx, likedKey(userID), petID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check liked pet: %w", err)
	}
	return liked, nil
}

// List returns every pet ID the user has liked
func (s *RedisLikedStore) List(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.client.SMembers(ctx, likedKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list liked pets: %w", err)
	}
	return ids, nil
}
