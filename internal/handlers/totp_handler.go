package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/middleware"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/services"
	"github.com/Spyboss/tmr-tradinglanka-sub000/pkg/utils"
)

type TOTPHandler struct {
	Service     *services.TOTPService
	UserService *services.UserService
}

func NewTOTPHandler(service *services.TOTPService, userService *services.UserService) *TOTPHandler {
	return &TOTPHandler{
		Service:     service,
		UserService: userService,
	}
}

// Setup generates a fresh secret and QR code for the logged-in user
func (h *TOTPHandler) Setup(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	user, err := h.UserService.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp, err := h.Service.GenerateSetup(r.Context(), user)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

// Verify confirms the first authenticator code and enables 2FA
func (h *TOTPHandler) Verify(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.VerifyAndEnable(r.Context(), userID, req.Code); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]bool{"totp_enabled": true})
}

// Disable turns 2FA off for the logged-in user
func (h *TOTPHandler) Disable(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.Disable(r.Context(), userID, req.Code); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]bool{"totp_enabled": false})
}
