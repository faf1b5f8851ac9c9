package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"pawhaven/internal/pet/domain"
	"pawhaven/internal/storage"
	"pawhaven/pkg/auth"
)

// fakeRepo is an in-memory PetRepository shared by the handler tests.
type fakeRepo struct {
	mu   sync.Mutex
	pets map[string]*domain.Pet
}

func (r *fakeRepo) Create(pet *domain.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *pet
	r.pets[pet.ID] = &copied
	return nil
}

func (r *fakeRepo) FindByID(id string) (*domain.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.pets[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeRepo) FindAll() ([]domain.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Pet, 0, len(r.pets))
	for _, p := range r.pets {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeRepo) FindByIDs(ids []string) ([]domain.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Pet
	for _, id := range ids {
		if p, ok := r.pets[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeRepo) Update(pet *domain.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[pet.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *pet
	r.pets[pet.ID] = &copied
	return nil
}

func (r *fakeRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.pets, id)
	return nil
}

func (r *fakeRepo) AddLikes(id string, delta int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pets[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	p.Likes += delta
	if p.Likes < 0 {
		p.Likes = 0
	}
	return p.Likes, nil
}

func (r *fakeRepo) Adopt(id, adopterID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pets[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.AdoptedBy != nil {
		return domain.ErrAlreadyAdopted
	}
	p.AdoptedBy = &adopterID
	return nil
}

func (r *fakeRepo) CountByOwner(ownerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.pets {
		if p.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) CountByAdopter(userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.pets {
		if p.AdoptedBy != nil && *p.AdoptedBy == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.pets)), nil
}

// fakeLiked is an in-memory LikedStore.
type fakeLiked struct {
	mu    sync.Mutex
	liked map[string]bool // userID + "/" + petID
}

func (s *fakeLiked) key(userID, petID string) string { return userID + "/" + petID }

func (s *fakeLiked) Add(ctx context.Context, userID, petID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liked[s.key(userID, petID)] = true
	return nil
}

func (s *fakeLiked) Remove(ctx context.Context, userID, petID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.liked, s.key(userID, petID))
	return nil
}

func (s *fakeLiked) Contains(ctx context.Context, userID, petID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.liked[s.key(userID, petID)], nil
}

func (s *fakeLiked) List(ctx context.Context, userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	prefix := userID + "/"
	for k := range s.liked {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			out = append(out, k[len(prefix):])
		}
	}
	return out, nil
}

// fakeRevoker marks token IDs as logged out.
type fakeRevoker struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func (s *fakeRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revoked[tokenID], nil
}

// The handler registers Prometheus collectors on the default registry, so
// the test suite builds exactly one of it and seeds per-test data with
// unique IDs.
var (
	setupOnce   sync.Once
	testRepo    *fakeRepo
	testRevoker *fakeRevoker
	testRouter  *mux.Router
)

func setup() {
	setupOnce.Do(func() {
		testRepo = &fakeRepo{pets: make(map[string]*domain.Pet)}
		testRevoker = &fakeRevoker{revoked: make(map[string]bool)}
		liked := &fakeLiked{liked: make(map[string]bool)}

		handler := NewPetHandler(testRepo, liked, storage.NewMemoryStore(), nil, testRevoker, "http://localhost:3000")
		testRouter = mux.NewRouter()
		handler.RegisterRoutes(testRouter)
	})
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, userID+"@example.com")
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + token
}

func doRequest(method, path, authHeader string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)
	return rec
}

func TestListPetsEndpoint(t *testing.T) {
	setup()
	testRepo.Create(&domain.Pet{ID: "list-1", Name: "Luna", Breed: "Husky", OwnerID: "owner-1", ImageURL: "x"})

	rec := doRequest(http.MethodGet, "/pets", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var page struct {
		Items      []domain.Pet `json:"items"`
		Page       int          `json:"page"`
		TotalPages int          `json:"total_pages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if page.Page != 1 || len(page.Items) == 0 {
		t.Errorf("page = %+v, want page 1 with items", page)
	}
}

func TestCreatePetRequiresAuth(t *testing.T) {
	setup()

	rec := doRequest(http.MethodPost, "/pets", "", map[string]interface{}{"name": "Luna", "image_url": "x"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestCreatePetEndpoint(t *testing.T) {
	setup()

	rec := doRequest(http.MethodPost, "/pets", bearer(t, "creator-1"), map[string]interface{}{
		"name":      "Biscuit",
		"breed":     "Corgi",
		"age":       2,
		"image_url": "https://img.example.com/biscuit.jpg",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body)
	}

	var pet domain.Pet
	if err := json.Unmarshal(rec.Body.Bytes(), &pet); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if pet.OwnerID != "creator-1" {
		t.Errorf("owner_id = %q, want creator-1 from token", pet.OwnerID)
	}
	if _, err := testRepo.FindByID(pet.ID); err != nil {
		t.Errorf("pet not persisted: %v", err)
	}
}

func TestCreatePetValidationError(t *testing.T) {
	setup()

	rec := doRequest(http.MethodPost, "/pets", bearer(t, "creator-2"), map[string]interface{}{
		"name": "NoImage",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body)
	}
}

func TestGetPetNotFoundEndpoint(t *testing.T) {
	setup()

	rec := doRequest(http.MethodGet, "/pets/no-such-pet", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetPetViewerFlagsEndpoint(t *testing.T) {
	setup()
	testRepo.Create(&domain.Pet{ID: "flags-1", Name: "Rex", OwnerID: "flags-owner", ImageURL: "x"})

	rec := doRequest(http.MethodGet, "/pets/flags-1", bearer(t, "flags-owner"), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var detail struct {
		IsOwner bool `json:"is_owner"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatal(err)
	}
	if !detail.IsOwner {
		t.Errorf("is_owner = false for the owner's own pet")
	}

	// Anonymous viewers get the pet without flags.
	rec = doRequest(http.MethodGet, "/pets/flags-1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("anonymous status = %d, want 200", rec.Code)
	}
}

func TestToggleLikeEndpoint(t *testing.T) {
	setup()
	testRepo.Create(&domain.Pet{ID: "like-1", Name: "Kiki", OwnerID: "like-owner", ImageURL: "x"})

	rec := doRequest(http.MethodPost, "/pets/like-1/like", bearer(t, "like-viewer"), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var result struct {
		Likes int  `json:"likes"`
		Liked bool `json:"liked"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.Likes != 1 || !result.Liked {
		t.Errorf("result = %+v, want likes 1 liked true", result)
	}

	// Liking your own pet is rejected.
	rec = doRequest(http.MethodPost, "/pets/like-1/like", bearer(t, "like-owner"), nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("own-pet like status = %d, want 400", rec.Code)
	}
}

func TestAdoptPetConflictEndpoint(t *testing.T) {
	setup()
	testRepo.Create(&domain.Pet{ID: "adopt-1", Name: "Milo", OwnerID: "adopt-owner", ImageURL: "x"})

	rec := doRequest(http.MethodPost, "/pets/adopt-1/adopt", bearer(t, "adopter-1"), map[string]bool{"confirm": true})
	if rec.Code != http.StatusOK {
		t.Fatalf("first adoption status = %d, want 200: %s", rec.Code, rec.Body)
	}

	rec = doRequest(http.MethodPost, "/pets/adopt-1/adopt", bearer(t, "adopter-2"), map[string]bool{"confirm": true})
	if rec.Code != http.StatusConflict {
		t.Errorf("second adoption status = %d, want 409", rec.Code)
	}
}

func TestRevokedSessionRejected(t *testing.T) {
	setup()

	token, err := auth.GenerateToken("revoked-user", "revoked@example.com")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	testRevoker.mu.Lock()
	testRevoker.revoked[claims.ID] = true
	testRevoker.mu.Unlock()

	rec := doRequest(http.MethodPost, "/pets", "Bearer "+token, map[string]interface{}{"name": "X", "image_url": "x"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 for revoked session", rec.Code)
	}
}

func TestShareLinkEndpoint(t *testing.T) {
	setup()
	testRepo.Create(&domain.Pet{ID: "share-1", Name: "Nori", OwnerID: "share-owner", ImageURL: "x"})

	rec := doRequest(http.MethodGet, "/pets/share-1/share", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var link struct {
		URL   string `json:"url"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &link); err != nil {
		t.Fatal(err)
	}
	if want := "http://localhost:3000/pets/share-1"; link.URL != want {
		t.Errorf("url = %q, want %q", link.URL, want)
	}
}

func TestProfileStatsEndpoint(t *testing.T) {
	setup()
	adopter := "stats-user"
	testRepo.Create(&domain.Pet{ID: "stats-1", Name: "A", OwnerID: "stats-user", ImageURL: "x"})
	testRepo.Create(&domain.Pet{ID: "stats-2", Name: "B", OwnerID: "someone", ImageURL: "x", AdoptedBy: &adopter})

	rec := doRequest(http.MethodGet, "/profile/stats", bearer(t, "stats-user"), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var stats struct {
		Listed  int64 `json:"listed"`
		Adopted int64 `json:"adopted"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatal(err)
	}
	if stats.Listed != 1 || stats.Adopted != 1 {
		t.Errorf("stats = %+v, want listed 1 adopted 1", stats)
	}
}

func TestDeletePetOwnerOnlyEndpoint(t *testing.T) {
	setup()
	testRepo.Create(&domain.Pet{ID: "del-1", Name: "Tofu", OwnerID: "del-owner", ImageURL: "x"})

	rec := doRequest(http.MethodDelete, "/pets/del-1", bearer(t, "del-other"), nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("non-owner delete status = %d, want 400", rec.Code)
	}

	rec = doRequest(http.MethodDelete, "/pets/del-1", bearer(t, "del-owner"), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("owner delete status = %d, want 200: %s", rec.Code, rec.Body)
	}
	if _, err := testRepo.FindByID("del-1"); err != domain.ErrNotFound {
		t.Errorf("pet still present after delete")
	}
}
