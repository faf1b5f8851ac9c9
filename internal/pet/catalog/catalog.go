// Package catalog implements the browsing rules for the pet catalog:
// substring search, breed filtering and fixed-size windowed pagination.
// The functions are pure so the list endpoint and its tests share one
// definition of "matches".
package catalog

import (
	"sort"
	"strings"

	"pawhaven/internal/pet/domain"
)

// PageSize is the fixed number of cards per catalog page.
const PageSize = 6

// Ellipsis marks a gap in the page-button sequence returned by PageNumbers.
const Ellipsis = -1

// Matches reports whether a pet satisfies the search term and breed filter.
// The search term matches case-insensitively against name, breed or
// description; the breed filter matches case-insensitively against breed,
// with "" and "all" meaning no filter.
func Matches(p domain.Pet, search, breed string) bool {
	if s := strings.ToLower(strings.TrimSpace(search)); s != "" {
		if !strings.Contains(strings.ToLower(p.Name), s) &&
			!strings.Contains(strings.ToLower(p.Breed), s) &&
			!strings.Contains(strings.ToLower(p.Description), s) {
			return false
		}
	}

	b := strings.ToLower(strings.TrimSpace(breed))
	if b == "" || b == "all" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Breed), b)
}

// Filter returns the pets matching the search term and breed filter,
// preserving input order.
func Filter(pets []domain.Pet, search, breed string) []domain.Pet {
	out := make([]domain.Pet, 0, len(pets))
	for _, p := range pets {
		if Matches(p, search, breed) {
			out = append(out, p)
		}
	}
	return out
}

// TotalPages returns ceil(n / PageSize).
func TotalPages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// ClampPage normalizes a requested page into [1, TotalPages(n)], treating
// out-of-range and unset values as page 1 of a non-empty catalog.
func ClampPage(page, n int) int {
	total := TotalPages(n)
	if total == 0 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// Page returns the slice of pets visible on the given (already clamped) page.
func Page(pets []domain.Pet, page int) []domain.Pet {
	start := (page - 1) * PageSize
	if start >= len(pets) || start < 0 {
		return []domain.Pet{}
	}
	end := start + PageSize
	if end > len(pets) {
		end = len(pets)
	}
	return pets[start:end]
}

// PageNumbers returns the windowed page-button sequence: first page, last
// page, current page ± 1, with Ellipsis filling the gaps.
func PageNumbers(current, total int) []int {
	if total <= 0 {
		return []int{}
	}

	show := func(p int) bool {
		return p == 1 || p == total || (p >= current-1 && p <= current+1)
	}

	out := make([]int, 0, total)
	for p := 1; p <= total; p++ {
		if show(p) {
			out = append(out, p)
			continue
		}
		if len(out) > 0 && out[len(out)-1] != Ellipsis {
			out = append(out, Ellipsis)
		}
	}
	return out
}

// Breeds returns the distinct non-empty breeds in the catalog, sorted
// case-insensitively, for the filter dropdown.
func Breeds(pets []domain.Pet) []string {
	seen := make(map[string]string)
	for _, p := range pets {
		b := strings.TrimSpace(p.Breed)
		if b == "" {
			continue
		}
		key := strings.ToLower(b)
		if _, ok := seen[key]; !ok {
			seen[key] = b
		}
	}

	out := make([]string, 0, len(seen))
	for _, b := range seen {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
