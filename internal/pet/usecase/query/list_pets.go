package query

import (
	"fmt"

	"pawhaven/internal/pet/catalog"
	"pawhaven/internal/pet/domain"
)

// ListPetsQuery represents the catalog query
type ListPetsQuery struct {
	Search string
	Breed  string
	Page   int
}

// CatalogPage is one page of the filtered catalog plus everything the
// client needs to render the pager and the breed dropdown.
type CatalogPage struct {
	Items      []domain.Pet `json:"items"`
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
	TotalCount int          `json:"total_count"`
	Pages      []int        `json:"pages"`
	Breeds     []string     `json:"breeds"`
}

// ListPetsHandler handles catalog queries
type ListPetsHandler struct {
	repo domain.PetRepository
}

// NewListPetsHandler creates a new list pets handler
func NewListPetsHandler(repo domain.PetRepository) *ListPetsHandler {
	return &ListPetsHandler{repo: repo}
}

// Handle executes the catalog query. Filtering happens after the fetch so
// the breed list always reflects the full catalog, and an out-of-range page
// is clamped rather than rejected.
func (h *ListPetsHandler) Handle(q ListPetsQuery) (*CatalogPage, error) {
	all, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}

	filtered := catalog.Filter(all, q.Search, q.Breed)
	totalPages := catalog.TotalPages(len(filtered))
	page := catalog.ClampPage(q.Page, len(filtered))

	return &CatalogPage{
		Items:      catalog.Page(filtered, page),
		Page:       page,
		TotalPages: totalPages,
		TotalCount: len(filtered),
		Pages:      catalog.PageNumbers(page, totalPages),
		Breeds:     catalog.Breeds(all),
	}, nil
}
