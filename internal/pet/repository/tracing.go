package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"pawhaven/internal/pet/domain"
)

var tracer = otel.Tracer("pet-repository")

// GormPetRepositoryWithTracing wraps GormPetRepository with tracing
type GormPetRepositoryWithTracing struct {
	*GormPetRepository
}

// NewGormPetRepositoryWithTracing creates a new repository with tracing
func NewGormPetRepositoryWithTracing(db *gorm.DB) *GormPetRepositoryWithTracing {
	return &GormPetRepositoryWithTracing{
		GormPetRepository: NewGormPetRepository(db),
	}
}

// FindByIDWithContext retrieves a pet by ID under a span
func (r *GormPetRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id string) (*domain.Pet, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.String("pet.id", id)))
	defer span.End()

	pet, err := r.GormPetRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("pet.name", pet.Name))
	return pet, nil
}

// FindAllWithContext retrieves the full catalog under a span
func (r *GormPetRepositoryWithTracing) FindAllWithContext(ctx context.Context) ([]domain.Pet, error) {
	_, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	pets, err := r.GormPetRepository.FindAll()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(pets)))
	return pets, nil
}

// AddLikesWithContext applies a like delta under a span
func (r *GormPetRepositoryWithTracing) AddLikesWithContext(ctx context.Context, id string, delta int) (int, error) {
	_, span := tracer.Start(ctx, "repository.AddLikes",
		trace.WithAttributes(
			attribute.String("pet.id", id),
			attribute.Int("likes.delta", delta),
		))
	defer span.End()

	likes, err := r.GormPetRepository.AddLikes(id, delta)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int("likes.count", likes))
	return likes, nil
}

// AdoptWithContext performs the adoption transition under a span
func (r *GormPetRepositoryWithTracing) AdoptWithContext(ctx context.Context, id, adopterID string) error {
	_, span := tracer.Start(ctx, "repository.Adopt",
		trace.WithAttributes(
			attribute.String("pet.id", id),
			attribute.String("adopter.id", adopterID),
		))
	defer span.End()

	if err := r.GormPetRepository.Adopt(id, adopterID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
