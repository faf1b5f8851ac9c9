//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"pawhaven/internal/user/delivery/http"
	"pawhaven/internal/user/domain"
	"pawhaven/internal/user/repository"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

// ProvideSessionStore provides the Redis-backed session store
func ProvideSessionStore(client *redis.Client) domain.SessionStore {
	return repository.NewRedisSessionStore(client)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
	ProvideSessionStore,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, redisClient *redis.Client) (*http.UserHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewUserHandler,
	)
	return nil, nil
}
