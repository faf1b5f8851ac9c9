package http

// ListPets godoc
// @Summary Browse the catalog
// @Description List pets with search, breed filter and pagination
// @Tags Pets
// @Produce json
// @Param search query string false "Free-text search on name, breed and description"
// @Param breed query string false "Breed filter ('all' or empty for no filter)"
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} object{items=array,page=int,total_pages=int,total_count=int,pages=array,breeds=array}
// @Failure 500 {object} object{error=string}
// @Router /pets [get]
func (h *PetHandler) ListPetsDoc() {}

// CreatePet godoc
// @Summary Add a pet
// @Description List a new pet for adoption
// @Tags Pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,breed=string,age=int,description=string,image_url=string} true "Pet data"
// @Success 201 {object} object{id=string,name=string,breed=string,age=int,description=string,image_url=string,likes=int,owner_id=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /pets [post]
func (h *PetHandler) CreatePetDoc() {}

// GetPet godoc
// @Summary Get pet details
// @Description Get a pet with viewer-specific flags
// @Tags Pets
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} object{id=string,name=string,likes=int,is_owner=bool,is_adopted=bool,is_liked=bool}
// @Failure 404 {object} object{error=string}
// @Router /pets/{id} [get]
func (h *PetHandler) GetPetDoc() {}

// UpdatePet godoc
// @Summary Edit a pet
// @Description Update a pet listing (owner only)
// @Tags Pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Pet ID"
// @Param request body object{name=string,breed=string,age=int,description=string,image_url=string} true "Pet data"
// @Success 200 {object} object{id=string,name=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /pets/{id} [put]
func (h *PetHandler) UpdatePetDoc() {}

// DeletePet godoc
// @Summary Remove a pet
// @Description Delete a pet listing (owner only)
// @Tags Pets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /pets/{id} [delete]
func (h *PetHandler) DeletePetDoc() {}

// ToggleLike godoc
// @Summary Like or unlike a pet
// @Description Toggle the viewer's like on a pet
// @Tags Pets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} object{likes=int,liked=bool}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /pets/{id}/like [post]
func (h *PetHandler) ToggleLikeDoc() {}

// AdoptPet godoc
// @Summary Adopt a pet
// @Description Adopt a pet; requires explicit confirmation and is permanent
// @Tags Pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Pet ID"
// @Param request body object{confirm=bool} true "Confirmation"
// @Success 200 {object} object{id=string,adopted_by=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /pets/{id}/adopt [post]
func (h *PetHandler) AdoptPetDoc() {}

// GetShareLink godoc
// @Summary Get a share payload
// @Description Get the URL, title and text for sharing a pet
// @Tags Pets
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} object{url=string,title=string,text=string}
// @Failure 404 {object} object{error=string}
// @Router /pets/{id}/share [get]
func (h *PetHandler) GetShareLinkDoc() {}

// UploadImage godoc
// @Summary Upload a pet image
// @Description Upload an image (max 5MB) and receive its public URL
// @Tags Uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} object{url=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /uploads [post]
func (h *PetHandler) UploadImageDoc() {}

// GetProfileStats godoc
// @Summary Get profile stats
// @Description Count the caller's listed and adopted pets
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{listed=int,adopted=int}
// @Failure 401 {object} object{error=string}
// @Router /profile/stats [get]
func (h *PetHandler) GetProfileStatsDoc() {}

// ListFavorites godoc
// @Summary List liked pets
// @Description List the pets the caller has liked
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {array} object{id=string,name=string,likes=int}
// @Failure 401 {object} object{error=string}
// @Router /profile/favorites [get]
func (h *PetHandler) ListFavoritesDoc() {}
