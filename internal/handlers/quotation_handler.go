package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/middleware"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/models"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/services"
	"github.com/Spyboss/tmr-tradinglanka-sub000/pkg/utils"

	"github.com/gorilla/mux"
)

type QuotationHandler struct {
	Service    *services.QuotationService
	PDFService *services.PDFService
}

func NewQuotationHandler(service *services.QuotationService, pdfService *services.PDFService) *QuotationHandler {
	return &QuotationHandler{
		Service:    service,
		PDFService: pdfService,
	}
}

func (h *QuotationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())

	q, err := h.Service.Create(r.Context(), &req, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, q)
}

func (h *QuotationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())

	quotations, err := h.Service.List(r.Context(), userID, role, r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if quotations == nil {
		quotations = []*models.Quotation{}
	}

	utils.JSON(w, http.StatusOK, quotations)
}

func (h *QuotationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())

	q, err := h.Service.Get(r.Context(), id, userID, role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, q)
}

func (h *QuotationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())

	q, err := h.Service.UpdateStatus(r.Context(), id, req.Status, userID, role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, q)
}

// Convert turns an accepted quotation into a bill
func (h *QuotationHandler) Convert(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.ConvertQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())

	bill, err := h.Service.ConvertToBill(r.Context(), id, &req, userID, role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, bill)
}

func (h *QuotationHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())

	q, err := h.Service.Get(r.Context(), id, userID, role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	data, err := h.PDFService.GenerateQuotationPDF(r.Context(), q)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s.pdf"`, q.QuotationNumber))
	w.Write(data)
}
