package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// Register godoc
// @Summary Register a new account
// @Description Create a marketplace account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string,confirm_password=string,display_name=string} true "Registration data"
// @Success 201 {object} object{id=string,email=string,display_name=string,created_at=string,updated_at=string}
// @Failure 400 {object} object{error=string}
// @Router /auth/register [post]
func (h *UserHandler) RegisterDoc() {}

// Login godoc
// @Summary Log in
// @Description Authenticate and receive a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Login credentials"
// @Success 200 {object} object{token=string,user=object}
// @Failure 401 {object} object{error=string}
// @Router /auth/login [post]
func (h *UserHandler) LoginDoc() {}

// Logout godoc
// @Summary Log out
// @Description Revoke the current session token
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{message=string}
// @Failure 401 {object} object{error=string}
// @Router /auth/logout [post]
func (h *UserHandler) LogoutDoc() {}

// GetProfile godoc
// @Summary Get current profile
// @Description Get the authenticated account
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{id=string,email=string,display_name=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /users/me [get]
func (h *UserHandler) GetProfileDoc() {}

// UpdateProfile godoc
// @Summary Update current profile
// @Description Update the authenticated account's display name
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{display_name=string} true "Update data"
// @Success 200 {object} object{id=string,email=string,display_name=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /users/me [put]
func (h *UserHandler) UpdateProfileDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string,error=string}
// @Router /health [get]
func (h *UserHandler) HealthCheckDoc() {}
