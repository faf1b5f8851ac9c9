//go:build wireinject
// +build wireinject

package pet

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"pawhaven/internal/pet/delivery/http"
	"pawhaven/internal/pet/domain"
	"pawhaven/internal/pet/repository"
	"pawhaven/internal/pet/usecase/command"
	"pawhaven/internal/storage"
)

// ProvidePetRepository provides the pet repository
func ProvidePetRepository(db *gorm.DB) domain.PetRepository {
	return repository.NewGormPetRepository(db)
}

// ProvideLikedStore provides the Redis-backed liked set
func ProvideLikedStore(client *redis.Client) domain.LikedStore {
	return repository.NewRedisLikedStore(client)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvidePetRepository,
	ProvideLikedStore,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(
	db *gorm.DB,
	redisClient *redis.Client,
	store storage.ObjectStore,
	publisher command.EventPublisher,
	sessions http.TokenRevoker,
	shareBaseURL string,
) (*http.PetHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewPetHandler,
	)
	return nil, nil
}
