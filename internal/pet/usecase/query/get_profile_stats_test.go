package query

import (
	"testing"

	"pawhaven/internal/pet/domain"
)

func TestGetProfileStats(t *testing.T) {
	me := "user-1"
	other := "user-2"
	repo := newMemPetRepo(
		domain.Pet{ID: "pet-1", Name: "Luna", OwnerID: me, ImageURL: "x"},
		domain.Pet{ID: "pet-2", Name: "Milo", OwnerID: me, ImageURL: "x", AdoptedBy: &other},
		domain.Pet{ID: "pet-3", Name: "Rex", OwnerID: other, ImageURL: "x", AdoptedBy: &me},
		domain.Pet{ID: "pet-4", Name: "Kiki", OwnerID: other, ImageURL: "x"},
	)
	handler := NewGetProfileStatsHandler(repo)

	stats, err := handler.Handle(GetProfileStatsQuery{UserID: me})
	if err != nil {
		t.Fatalf("Handle() unexpected error: %v", err)
	}
	if stats.Listed != 2 {
		t.Errorf("listed = %d, want 2", stats.Listed)
	}
	if stats.Adopted != 1 {
		t.Errorf("adopted = %d, want 1", stats.Adopted)
	}
}

func TestGetProfileStatsNewUser(t *testing.T) {
	handler := NewGetProfileStatsHandler(newMemPetRepo())

	stats, err := handler.Handle(GetProfileStatsQuery{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Handle() unexpected error: %v", err)
	}
	if stats.Listed != 0 || stats.Adopted != 0 {
		t.Errorf("stats = %+v, want zeros", stats)
	}
}
