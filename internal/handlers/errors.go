package handlers

import (
	"errors"
	"net/http"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/repositories"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/services"
	"github.com/Spyboss/tmr-tradinglanka-sub000/pkg/utils"

	"github.com/jackc/pgx/v5"
)

// writeServiceError maps service layer errors onto HTTP statuses
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		utils.Error(w, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrForbidden):
		utils.Error(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, services.ErrValidation):
		utils.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.Error(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrTOTPRequired):
		utils.Error(w, http.StatusUnauthorized, "TOTP code required")
	case errors.Is(err, services.ErrTOTPInvalid):
		utils.Error(w, http.StatusUnauthorized, "Invalid TOTP code")
	case errors.Is(err, repositories.ErrInventoryUnavailable):
		utils.Error(w, http.StatusConflict, "Inventory item is not available")
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}
