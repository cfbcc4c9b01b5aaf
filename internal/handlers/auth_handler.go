package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/middleware"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/models"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/repositories"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/services"
	"github.com/Spyboss/tmr-tradinglanka-sub000/pkg/utils"
)

type AuthHandler struct {
	UserService  *services.UserService
	LoginLogRepo *repositories.LoginLogRepository
}

func NewAuthHandler(userService *services.UserService, loginLogRepo *repositories.LoginLogRepository) *AuthHandler {
	return &AuthHandler{
		UserService:  userService,
		LoginLogRepo: loginLogRepo,
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.UserService.Signup(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.UserService.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// Audit trail; a failed insert never blocks the login
	entry := &models.LoginLog{
		UserID:    resp.User.ID,
		IPAddress: middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
	}
	if err := h.LoginLogRepo.Create(r.Context(), entry); err != nil {
		log.Printf("[Auth] Failed to record login for user %d: %v", resp.User.ID, err)
	}

	utils.JSON(w, http.StatusOK, resp)
}
