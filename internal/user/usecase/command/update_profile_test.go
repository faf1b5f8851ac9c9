package command

import (
	"strings"
	"testing"

	"pawhaven/internal/user/domain"
)

func TestUpdateProfile(t *testing.T) {
	repo := newMemUserRepo(&domain.User{ID: "user-1", Email: "ada@example.com", DisplayName: "Ada"})
	handler := NewUpdateProfileHandler(repo)

	user, err := handler.Handle(UpdateProfileCommand{UserID: "user-1", DisplayName: "  Ada Lovelace "})
	if err != nil {
		t.Fatalf("Handle() unexpected error: %v", err)
	}
	if user.DisplayName != "Ada Lovelace" {
		t.Errorf("display_name = %q, want trimmed update", user.DisplayName)
	}

	stored, err := repo.FindByID("user-1")
	if err != nil {
		t.Fatal(err)
	}
	if stored.DisplayName != "Ada Lovelace" {
		t.Errorf("update not persisted: %q", stored.DisplayName)
	}
}

func TestUpdateProfileEmptyName(t *testing.T) {
	repo := newMemUserRepo(&domain.User{ID: "user-1", Email: "ada@example.com", DisplayName: "Ada"})
	handler := NewUpdateProfileHandler(repo)

	_, err := handler.Handle(UpdateProfileCommand{UserID: "user-1", DisplayName: "   "})
	if err == nil || !strings.Contains(err.Error(), "display name is required") {
		t.Fatalf("Handle() error = %v, want display name validation", err)
	}

	stored, _ := repo.FindByID("user-1")
	if stored.DisplayName != "Ada" {
		t.Errorf("display name changed despite validation failure")
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	handler := NewUpdateProfileHandler(newMemUserRepo())

	_, err := handler.Handle(UpdateProfileCommand{UserID: "missing", DisplayName: "Ada"})
	if err != domain.ErrNotFound {
		t.Fatalf("Handle() error = %v, want ErrNotFound", err)
	}
}
