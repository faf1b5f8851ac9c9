package query

import (
	"fmt"

	"pawhaven/internal/pet/domain"
)

// GetShareLinkQuery represents the share payload query
type GetShareLinkQuery struct {
	PetID string
}

// ShareLink is the payload a client passes to its share mechanism
type ShareLink struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// GetShareLinkHandler builds share payloads for pet detail pages
type GetShareLinkHandler struct {
	repo    domain.PetRepository
	baseURL string
}

// NewGetShareLinkHandler creates a new share link handler. baseURL is the
// public origin of the frontend, e.g. https://pawhaven.example.com.
func NewGetShareLinkHandler(repo domain.PetRepository, baseURL string) *GetShareLinkHandler {
	return &GetShareLinkHandler{repo: repo, baseURL: baseURL}
}

// Handle executes the share link query
func (h *GetShareLinkHandler) Handle(q GetShareLinkQuery) (*ShareLink, error) {
	pet, err := h.repo.FindByID(q.PetID)
	if err != nil {
		return nil, err
	}

	return &ShareLink{
		URL:   fmt.Sprintf("%s/pets/%s", h.baseURL, pet.ID),
		Title: fmt.Sprintf("Meet %s on PawHaven", pet.Name),
		Text:  fmt.Sprintf("%s is looking for a home. Come say hello!", pet.Name),
	}, nil
}
