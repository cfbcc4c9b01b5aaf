package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/middleware"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/models"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/services"
	"github.com/Spyboss/tmr-tradinglanka-sub000/pkg/utils"
)

type BrandingHandler struct {
	Service *services.BrandingService
}

func NewBrandingHandler(service *services.BrandingService) *BrandingHandler {
	return &BrandingHandler{Service: service}
}

func (h *BrandingHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Service.GetProfile(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, profile)
}

func (h *BrandingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.BrandingProfile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())

	profile, err := h.Service.UpdateProfile(r.Context(), &req, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	email, _ := middleware.GetEmailFromContext(r.Context())
	log.Printf("[Branding] Profile updated by %s", email)

	utils.JSON(w, http.StatusOK, profile)
}

// UploadLogo accepts a multipart form with a "logo" file field
func (h *BrandingHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(services.MaxLogoSize); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "logo file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, services.MaxLogoSize+1))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Failed to read file")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())

	url, err := h.Service.UploadLogo(r.Context(), data, header.Header.Get("Content-Type"), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"logo_url": url})
}
