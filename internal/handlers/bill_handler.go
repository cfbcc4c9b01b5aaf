package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/middleware"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/models"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/services"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/storage"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/timeutil"
	"github.com/Spyboss/tmr-tradinglanka-sub000/pkg/utils"

	"github.com/gorilla/mux"
)

type BillHandler struct {
	Service    *services.BillService
	PDFService *services.PDFService
	Uploader   *storage.Uploader
}

func NewBillHandler(service *services.BillService, pdfService *services.PDFService, uploader *storage.Uploader) *BillHandler {
	return &BillHandler{
		Service:    service,
		PDFService: pdfService,
		Uploader:   uploader,
	}
}

// Create accepts the raw request body as a map so the pricing pipeline can
// normalize legacy field names and string-encoded numbers itself.
func (h *BillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())

	bill, ignored, err := h.Service.CreateBill(r.Context(), raw, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if len(ignored) > 0 {
		log.Printf("[Bills] Create dropped fields %v", ignored)
	}

	utils.JSON(w, http.StatusCreated, bill)
}

func (h *BillHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())

	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	bills, err := h.Service.List(r.Context(), userID, role, q.Get("status"), q.Get("q"), limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if bills == nil {
		bills = []*models.Bill{}
	}

	utils.JSON(w, http.StatusOK, bills)
}

func (h *BillHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())

	bill, err := h.Service.Get(r.Context(), id, userID, role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, bill)
}

// GetByNumber looks a bill up by its printed document number
func (h *BillHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())

	bill, err := h.Service.GetByNumber(r.Context(), mux.Vars(r)["number"], userID, role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, bill)
}

func (h *BillHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())

	bill, ignored, err := h.Service.UpdateBill(r.Context(), id, raw, userID, role)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if len(ignored) > 0 {
		log.Printf("[Bills] Update %d dropped fields %v", id, ignored)
	}

	utils.JSON(w, http.StatusOK, bill)
}

func (h *BillHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateBillStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	switch req.Status {
	case models.BillStatusPending, models.BillStatusCompleted, models.BillStatusCancelled, models.BillStatusConverted:
	default:
		utils.Error(w, http.StatusBadRequest, "Invalid status")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())

	bill, err := h.Service.UpdateStatus(r.Context(), id, req.Status, userID, role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, bill)
}

func (h *BillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())

	if err := h.Service.DeleteBill(r.Context(), id, userID, role); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PDF streams the bill as application/pdf
func (h *BillHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())

	bill, err := h.Service.Get(r.Context(), id, userID, role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	data, err := h.PDFService.GenerateBillPDF(r.Context(), bill)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// Archive a copy to object storage, off the request path
	if h.Uploader.Enabled() {
		go func(number string, pdf []byte) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			key := "bills/" + timeutil.Now().Format(timeutil.DateLayout) + "/" + number + ".pdf"
			if _, err := h.Uploader.Upload(ctx, key, pdf, "application/pdf"); err != nil {
				log.Printf("[Bills] PDF archive %s failed: %v", number, err)
			}
		}(bill.BillNumber, data)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s.pdf"`, bill.BillNumber))
	w.Write(data)
}
