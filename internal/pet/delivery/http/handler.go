package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"pawhaven/internal/pet/domain"
	"pawhaven/internal/pet/usecase/command"
	"pawhaven/internal/pet/usecase/query"
	"pawhaven/internal/storage"
)

// PetHandler handles HTTP requests for the pet catalog
type PetHandler struct {
	// Command handlers
	createHandler     *command.CreatePetHandler
	updateHandler     *command.UpdatePetHandler
	deleteHandler     *command.DeletePetHandler
	toggleLikeHandler *command.ToggleLikeHandler
	adoptHandler      *command.AdoptPetHandler
	uploadHandler     *command.UploadImageHandler

	// Query handlers
	getPetHandler    *query.GetPetHandler
	listHandler      *query.ListPetsHandler
	statsHandler     *query.GetProfileStatsHandler
	favoritesHandler *query.ListFavoritesHandler
	shareHandler     *query.GetShareLinkHandler

	repo           domain.PetRepository
	authMW         func(http.HandlerFunc) http.HandlerFunc
	optionalAuthMW func(http.HandlerFunc) http.HandlerFunc
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	totalPets      prometheus.Gauge
}

// NewPetHandler creates a new pet handler. publisher and sessions may be nil
// when Kafka or Redis are not configured.
func NewPetHandler(
	repo domain.PetRepository,
	liked domain.LikedStore,
	store storage.ObjectStore,
	publisher command.EventPublisher,
	sessions TokenRevoker,
	shareBaseURL string,
) *PetHandler {
	// Initialize command handlers
	createHandler := command.NewCreatePetHandler(repo)
	updateHandler := command.NewUpdatePetHandler(repo)
	deleteHandler := command.NewDeletePetHandler(repo)
	toggleLikeHandler := command.NewToggleLikeHandler(repo, liked)
	adoptHandler := command.NewAdoptPetHandler(repo, publisher)
	uploadHandler := command.NewUploadImageHandler(store)

	// Initialize query handlers
	getPetHandler := query.NewGetPetHandler(repo, liked)
	listHandler := query.NewListPetsHandler(repo)
	statsHandler := query.NewGetProfileStatsHandler(repo)
	favoritesHandler := query.NewListFavoritesHandler(repo, liked)
	shareHandler := query.NewGetShareLinkHandler(repo, shareBaseURL)

	// Initialize Prometheus metrics
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pet_service_requests_total",
			Help: "Total number of requests to pet endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pet_service_request_duration_seconds",
			Help:    "Duration of pet endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	totalPets := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pet_service_pets_total",
			Help: "Number of pets in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(totalPets)

	return &PetHandler{
		createHandler:     createHandler,
		updateHandler:     updateHandler,
		deleteHandler:     deleteHandler,
		toggleLikeHandler: toggleLikeHandler,
		adoptHandler:      adoptHandler,
		uploadHandler:     uploadHandler,
		getPetHandler:     getPetHandler,
		listHandler:       listHandler,
		statsHandler:      statsHandler,
		favoritesHandler:  favoritesHandler,
		shareHandler:      shareHandler,
		repo:              repo,
		authMW:            NewAuthMiddleware(sessions),
		optionalAuthMW:    NewOptionalAuthMiddleware(sessions),
		requestCounter:    requestCounter,
		requestLatency:    requestLatency,
		totalPets:         totalPets,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *PetHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// petRequest is the JSON body shared by create and update
type petRequest struct {
	Name        string `json:"name"`
	Breed       string `json:"breed"`
	Age         *int   `json:"age"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// ListPets handles GET /pets
func (h *PetHandler) ListPets(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	q := query.ListPetsQuery{
		Search: r.URL.Query().Get("search"),
		Breed:  r.URL.Query().Get("breed"),
		Page:   page,
	}

	result, err := h.listHandler.Handle(q)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.updatePetsMetric()
	h.respondJSON(w, http.StatusOK, result)
}

// CreatePet handles POST /pets
func (h *PetHandler) CreatePet(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req petRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.CreatePetCommand{
		OwnerID:     userID,
		Name:        req.Name,
		Breed:       req.Breed,
		Age:         req.Age,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	pet, err := h.createHandler.Handle(cmd)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.updatePetsMetric()
	h.respondJSON(w, http.StatusCreated, pet)
}

// GetPet handles GET /pets/{id}
func (h *PetHandler) GetPet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	viewerID, _ := r.Context().Value(UserIDKey).(string)

	q := query.GetPetQuery{PetID: vars["id"], ViewerID: viewerID}
	detail, err := h.getPetHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondPetError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, detail)
}

// UpdatePet handles PUT /pets/{id}
func (h *PetHandler) UpdatePet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req petRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdatePetCommand{
		PetID:       vars["id"],
		UserID:      userID,
		Name:        req.Name,
		Breed:       req.Breed,
		Age:         req.Age,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	pet, err := h.updateHandler.Handle(cmd)
	if err != nil {
		h.respondPetError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, pet)
}

// DeletePet handles DELETE /pets/{id}
func (h *PetHandler) DeletePet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	cmd := command.DeletePetCommand{PetID: vars["id"], UserID: userID}
	if err := h.deleteHandler.Handle(cmd); err != nil {
		h.respondPetError(w, err)
		return
	}

	h.updatePetsMetric()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Pet deleted successfully"})
}

// ToggleLike handles POST /pets/{id}/like
func (h *PetHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	cmd := command.ToggleLikeCommand{PetID: vars["id"], UserID: userID}
	result, err := h.toggleLikeHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondPetError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// AdoptPet handles POST /pets/{id}/adopt
func (h *PetHandler) AdoptPet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req struct {
		Confirm bool `json:"confirm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.AdoptPetCommand{PetID: vars["id"], UserID: userID, Confirm: req.Confirm}
	pet, err := h.adoptHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondPetError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, pet)
}

// GetShareLink handles GET /pets/{id}/share
func (h *PetHandler) GetShareLink(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	link, err := h.shareHandler.Handle(query.GetShareLinkQuery{PetID: vars["id"]})
	if err != nil {
		h.respondPetError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, link)
}

// UploadImage handles POST /uploads
func (h *PetHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "please select an image file")
		return
	}
	defer file.Close()

	cmd := command.UploadImageCommand{
		UserID:      userID,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}

	url, err := h.uploadHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]string{"url": url})
}

// GetProfileStats handles GET /profile/stats
func (h *PetHandler) GetProfileStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	stats, err := h.statsHandler.Handle(query.GetProfileStatsQuery{UserID: userID})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, stats)
}

// ListFavorites handles GET /profile/favorites
func (h *PetHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	pets, err := h.favoritesHandler.Handle(r.Context(), query.ListFavoritesQuery{UserID: userID})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, pets)
}

// HealthCheck handles GET /health
func (h *PetHandler) HealthCheck(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		// Check database connectivity
		if err := db.PingContext(ctx); err != nil {
			h.respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		h.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

// updatePetsMetric updates the catalog size gauge
func (h *PetHandler) updatePetsMetric() {
	count, err := h.repo.Count()
	if err == nil {
		h.totalPets.Set(float64(count))
	}
}

// respondPetError maps domain errors to HTTP status codes
func (h *PetHandler) respondPetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyAdopted):
		h.respondError(w, http.StatusConflict, err.Error())
	default:
		h.respondError(w, http.StatusBadRequest, err.Error())
	}
}

// respondJSON sends a JSON response
func (h *PetHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *PetHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all pet routes
func (h *PetHandler) RegisterRoutes(router *mux.Router) {
	// Public catalog routes; the detail page reads the viewer when present
	router.HandleFunc("/pets", h.metricsMiddleware("/pets", h.ListPets)).Methods("GET")
	router.HandleFunc("/pets/{id}", h.metricsMiddleware("/pets/{id}", h.optionalAuthMW(h.GetPet))).Methods("GET")
	router.HandleFunc("/pets/{id}/share", h.metricsMiddleware("/pets/{id}/share", h.GetShareLink)).Methods("GET")

	// Authenticated routes
	router.HandleFunc("/pets", h.metricsMiddleware("/pets", h.authMW(h.CreatePet))).Methods("POST")
	router.HandleFunc("/pets/{id}", h.metricsMiddleware("/pets/{id}", h.authMW(h.UpdatePet))).Methods("PUT")
	router.HandleFunc("/pets/{id}", h.metricsMiddleware("/pets/{id}", h.authMW(h.DeletePet))).Methods("DELETE")
	router.HandleFunc("/pets/{id}/like", h.metricsMiddleware("/pets/{id}/like", h.authMW(h.ToggleLike))).Methods("POST")
	router.HandleFunc("/pets/{id}/adopt", h.metricsMiddleware("/pets/{id}/adopt", h.authMW(h.AdoptPet))).Methods("POST")
	router.HandleFunc("/uploads", h.metricsMiddleware("/uploads", h.authMW(h.UploadImage))).Methods("POST")
	router.HandleFunc("/profile/stats", h.metricsMiddleware("/profile/stats", h.authMW(h.GetProfileStats))).Methods("GET")
	router.HandleFunc("/profile/favorites", h.metricsMiddleware("/profile/favorites", h.authMW(h.ListFavorites))).Methods("GET")
}

// RegisterHealthCheck registers health check endpoint
func (h *PetHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", h.HealthCheck(db)).Methods("GET")
}
