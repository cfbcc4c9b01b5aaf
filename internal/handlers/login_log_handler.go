package handlers

import (
	"net/http"
	"strconv"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/models"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/repositories"
	"github.com/Spyboss/tmr-tradinglanka-sub000/pkg/utils"
)

type LoginLogHandler struct {
	Repo *repositories.LoginLogRepository
}

func NewLoginLogHandler(repo *repositories.LoginLogRepository) *LoginLogHandler {
	return &LoginLogHandler{Repo: repo}
}

// List returns recent logins, admin only
func (h *LoginLogHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.Repo.List(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if logs == nil {
		logs = []*models.LoginLog{}
	}

	utils.JSON(w, http.StatusOK, logs)
}
