package catalog

import (
	"fmt"
	"reflect"
	"testing"

	"pawhaven/internal/pet/domain"
)

func makePets(n int) []domain.Pet {
	pets := make([]domain.Pet, 0, n)
	for i := 0; i < n; i++ {
		pets = append(pets, domain.Pet{
			ID:   fmt.Sprintf("pet-%d", i),
			Name: fmt.Sprintf("Pet %d", i),
		})
	}
	return pets
}

func TestMatches(t *testing.T) {
	pet := domain.Pet{
		Name:        "Luna",
		Breed:       "Golden Retriever",
		Description: "A playful companion",
	}

	tests := []struct {
		name   string
		search string
		breed  string
		want   bool
	}{
		{"no filters", "", "", true},
		{"name match", "luna", "", true},
		{"name match case insensitive", "LUNA", "", true},
		{"breed match via search", "retriever", "", true},
		{"description match", "playful", "", true},
		{"no match", "rex", "", false},
		{"breed filter match", "", "golden retriever", true},
		{"breed filter all", "", "all", true},
		{"breed filter All capitalized", "", "All", true},
		{"breed filter mismatch", "", "siamese", false},
		{"search and breed both match", "luna", "golden retriever", true},
		{"search matches but breed does not", "luna", "siamese", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(pet, tt.search, tt.breed); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.search, tt.breed, got, tt.want)
			}
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	pets := []domain.Pet{
		{ID: "a", Name: "Luna", Breed: "Husky"},
		{ID: "b", Name: "Max", Breed: "Beagle"},
		{ID: "c", Name: "Lucy", Breed: "Husky"},
	}

	got := Filter(pets, "", "husky")
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("Filter returned %v, want pets a and c in order", got)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{-1, 0},
		{1, 1},
		{6, 1},
		{7, 2},
		{12, 2},
		{13, 3},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.n); got != tt.want {
			t.Errorf("TotalPages(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page int
		n    int
		want int
	}{
		{0, 13, 1},
		{-5, 13, 1},
		{1, 13, 1},
		{3, 13, 3},
		{99, 13, 3},
		{1, 0, 1},
	}

	for _, tt := range tests {
		if got := ClampPage(tt.page, tt.n); got != tt.want {
			t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.n, got, tt.want)
		}
	}
}

func TestPage(t *testing.T) {
	pets := makePets(13)

	first := Page(pets, 1)
	if len(first) != PageSize {
		t.Fatalf("page 1 has %d pets, want %d", len(first), PageSize)
	}
	if first[0].ID != "pet-0" {
		t.Errorf("page 1 starts at %s, want pet-0", first[0].ID)
	}

	last := Page(pets, 3)
	if len(last) != 1 {
		t.Fatalf("page 3 has %d pets, want 1", len(last))
	}
	if last[0].ID != "pet-12" {
		t.Errorf("page 3 contains %s, want pet-12", last[0].ID)
	}

	if got := Page(pets, 5); len(got) != 0 {
		t.Errorf("out-of-range page returned %d pets, want 0", len(got))
	}
}

func TestPageNumbers(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{"empty", 1, 0, []int{}},
		{"single page", 1, 1, []int{1}},
		{"few pages, no gaps", 2, 3, []int{1, 2, 3}},
		{"gap after window", 1, 10, []int{1, 2, Ellipsis, 10}},
		{"gaps both sides", 5, 10, []int{1, Ellipsis, 4, 5, 6, Ellipsis, 10}},
		{"gap before window", 10, 10, []int{1, Ellipsis, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageNumbers(tt.current, tt.total)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PageNumbers(%d, %d) = %v, want %v", tt.current, tt.total, got, tt.want)
			}
		})
	}
}

func TestBreeds(t *testing.T) {
	pets := []domain.Pet{
		{Breed: "Husky"},
		{Breed: "beagle"},
		{Breed: ""},
		{Breed: "HUSKY"},
		{Breed: "  "},
		{Breed: "Corgi"},
	}

	got := Breeds(pets)
	want := []string{"beagle", "Corgi", "Husky"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Breeds = %v, want %v", got, want)
	}
}
