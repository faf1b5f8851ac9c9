package command

import (
	"context"
	"strings"
	"testing"

	"pawhaven/internal/pet/domain"
)

func TestToggleLike(t *testing.T) {
	ctx := context.Background()

	pet := &domain.Pet{ID: "pet-1", Name: "Luna", OwnerID: "owner-1", Likes: 4, ImageURL: "x"}
	repo := newMemPetRepo(pet)
	liked := newMemLikedStore()
	handler := NewToggleLikeHandler(repo, liked)

	// First toggle likes the pet
	result, err := handler.Handle(ctx, ToggleLikeCommand{PetID: "pet-1", UserID: "viewer-1"})
	if err != nil {
		t.Fatalf("Handle() unexpected error: %v", err)
	}
	if result.Likes != 5 || !result.Liked {
		t.Errorf("first toggle = %+v, want likes=5 liked=true", result)
	}

	// Second toggle takes it back
	result, err = handler.Handle(ctx, ToggleLikeCommand{PetID: "pet-1", UserID: "viewer-1"})
	if err != nil {
		t.Fatalf("Handle() unexpected error: %v", err)
	}
	if result.Likes != 4 || result.Liked {
		t.Errorf("second toggle = %+v, want likes=4 liked=false", result)
	}
}

func TestToggleLikeOwnPet(t *testing.T) {
	pet := &domain.Pet{ID: "pet-1", Name: "Luna", OwnerID: "owner-1", ImageURL: "x"}
	handler := NewToggleLikeHandler(newMemPetRepo(pet), newMemLikedStore())

	_, err := handler.Handle(context.Background(), ToggleLikeCommand{PetID: "pet-1", UserID: "owner-1"})
	if err == nil || !strings.Contains(err.Error(), "cannot like your own pet") {
		t.Fatalf("Handle() error = %v, want own-pet rejection", err)
	}
}

func TestToggleLikeAdoptedPet(t *testing.T) {
	adopter := "someone"
	pet := &domain.Pet{ID: "pet-1", Name: "Luna", OwnerID: "owner-1", AdoptedBy: &adopter, ImageURL: "x"}
	handler := NewToggleLikeHandler(newMemPetRepo(pet), newMemLikedStore())

	_, err := handler.Handle(context.Background(), ToggleLikeCommand{PetID: "pet-1", UserID: "viewer-1"})
	if err == nil || !strings.Contains(err.Error(), "already been adopted") {
		t.Fatalf("Handle() error = %v, want adopted rejection", err)
	}
}

func TestToggleLikeNotFound(t *testing.T) {
	handler := NewToggleLikeHandler(newMemPetRepo(), newMemLikedStore())

	_, err := handler.Handle(context.Background(), ToggleLikeCommand{PetID: "missing", UserID: "viewer-1"})
	if err != domain.ErrNotFound {
		t.Fatalf("Handle() error = %v, want ErrNotFound", err)
	}
}

func TestToggleLikeNeverBelowZero(t *testing.T) {
	ctx := context.Background()

	// The liked set remembers a like, but the counter is already at zero
	// (e.g. after a reset). The unlike must not drive it negative.
	pet := &domain.Pet{ID: "pet-1", Name: "Luna", OwnerID: "owner-1", Likes: 0, ImageURL: "x"}
	repo := newMemPetRepo(pet)
	liked := newMemLikedStore()
	liked.Add(ctx, "viewer-1", "pet-1")

	handler := NewToggleLikeHandler(repo, liked)
	result, err := handler.Handle(ctx, ToggleLikeCommand{PetID: "pet-1", UserID: "viewer-1"})
	if err != nil {
		t.Fatalf("Handle() unexpected error: %v", err)
	}
	if result.Likes != 0 {
		t.Errorf("likes = %d, want 0 (clamped)", result.Likes)
	}
	if result.Liked {
		t.Errorf("liked = true after unlike")
	}
}
