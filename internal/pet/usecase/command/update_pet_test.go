package command

import (
	"strings"
	"testing"

	"pawhaven/internal/pet/domain"
)

func TestUpdatePet(t *testing.T) {
	pet := &domain.Pet{
		ID:       "pet-1",
		Name:     "Luna",
		Breed:    "Husky",
		OwnerID:  "owner-1",
		Likes:    7,
		ImageURL: "https://img.example.com/luna.jpg",
	}
	repo := newMemPetRepo(pet)
	handler := NewUpdatePetHandler(repo)

	updated, err := handler.Handle(UpdatePetCommand{
		PetID:       "pet-1",
		UserID:      "owner-1",
		Name:        "Luna Belle",
		Breed:       "Siberian Husky",
		Age:         intPtr(4),
		Description: "Still loves snow",
		ImageURL:    "https://img.example.com/luna2.jpg",
	})
	if err != nil {
		t.Fatalf("Handle() unexpected error: %v", err)
	}

	if updated.Name != "Luna Belle" || updated.Breed != "Siberian Husky" {
		t.Errorf("fields not updated: %+v", updated)
	}
	if updated.Likes != 7 {
		t.Errorf("likes changed on edit: %d, want 7", updated.Likes)
	}
	if updated.OwnerID != "owner-1" {
		t.Errorf("owner changed on edit: %s", updated.OwnerID)
	}
}

func TestUpdatePetNotOwner(t *testing.T) {
	pet := &domain.Pet{ID: "pet-1", Name: "Luna", OwnerID: "owner-1", ImageURL: "x"}
	handler := NewUpdatePetHandler(newMemPetRepo(pet))

	_, err := handler.Handle(UpdatePetCommand{
		PetID:    "pet-1",
		UserID:   "someone-else",
		Name:     "Hijacked",
		ImageURL: "x",
	})
	if err == nil || !strings.Contains(err.Error(), "only the owner can edit") {
		t.Fatalf("Handle() error = %v, want ownership rejection", err)
	}
}

func TestUpdatePetKeepsImageWhenOmitted(t *testing.T) {
	pet := &domain.Pet{ID: "pet-1", Name: "Luna", OwnerID: "owner-1", ImageURL: "https://img.example.com/luna.jpg"}
	repo := newMemPetRepo(pet)
	handler := NewUpdatePetHandler(repo)

	updated, err := handler.Handle(UpdatePetCommand{
		PetID:  "pet-1",
		UserID: "owner-1",
		Name:   "Luna",
	})
	if err != nil {
		t.Fatalf("Handle() unexpected error: %v", err)
	}
	if updated.ImageURL != "https://img.example.com/luna.jpg" {
		t.Errorf("image cleared on edit: %q", updated.ImageURL)
	}
}

func TestUpdatePetValidation(t *testing.T) {
	pet := &domain.Pet{ID: "pet-1", Name: "Luna", OwnerID: "owner-1", ImageURL: "x"}
	handler := NewUpdatePetHandler(newMemPetRepo(pet))

	_, err := handler.Handle(UpdatePetCommand{
		PetID:  "pet-1",
		UserID: "owner-1",
		Name:   "",
	})
	if err == nil || !strings.Contains(err.Error(), "pet name is required") {
		t.Fatalf("Handle() error = %v, want name validation", err)
	}
}

func TestUpdatePetNotFound(t *testing.T) {
	handler := NewUpdatePetHandler(newMemPetRepo())

	_, err := handler.Handle(UpdatePetCommand{PetID: "missing", UserID: "owner-1", Name: "X", ImageURL: "x"})
	if err != domain.ErrNotFound {
		t.Fatalf("Handle() error = %v, want ErrNotFound", err)
	}
}
