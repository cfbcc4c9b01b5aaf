package services

import (
	"context"
	"fmt"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/billing"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/cache"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/models"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/repositories"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/timeutil"

	"github.com/go-playground/validator/v10"
)

const defaultQuotationValidDays = 14

type QuotationService struct {
	repo        *repositories.QuotationRepository
	billService *BillService
	validate    *validator.Validate
}

func NewQuotationService(repo *repositories.QuotationRepository, billService *BillService) *QuotationService {
	return &QuotationService{
		repo:        repo,
		billService: billService,
		validate:    validator.New(),
	}
}

// Create prices a quotation the same way a cash bill would be priced so
// the quoted total matches the eventual bill.
func (s *QuotationService) Create(ctx context.Context, req *models.CreateQuotationRequest, ownerID int) (*models.Quotation, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	vehicleType := billing.NormalizeVehicleType(req.VehicleType)
	total := req.BikePrice
	if vehicleType == billing.VehicleTypeMotorcycle {
		total += billing.RMVChargeCash
	}

	validDays := req.ValidDays
	if validDays == 0 {
		validDays = defaultQuotationValidDays
	}
	// Validity is counted in whole Colombo days
	validUntil := timeutil.StartOfDay(timeutil.Now()).AddDate(0, 0, validDays)

	q := &models.Quotation{
		CustomerName:    req.CustomerName,
		CustomerNIC:     req.CustomerNIC,
		CustomerAddress: req.CustomerAddress,
		BikeModel:       req.BikeModel,
		VehicleType:     vehicleType,
		BikePrice:       req.BikePrice,
		TotalAmount:     total,
		ValidUntil:      &validUntil,
		Status:          models.QuotationDraft,
		OwnerID:         ownerID,
	}
	if err := s.repo.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// Get returns one quotation, read-scoped to its owner or an admin
func (s *QuotationService) Get(ctx context.Context, id, userID int, role string) (*models.Quotation, error) {
	q, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ownerOrAdmin(q.OwnerID, userID, role) {
		return nil, ErrForbidden
	}
	return q, nil
}

func (s *QuotationService) List(ctx context.Context, userID int, role, status string) ([]*models.Quotation, error) {
	var ownerID *int
	if role != "admin" {
		ownerID = &userID
	}
	return s.repo.List(ctx, ownerID, status)
}

// UpdateStatus transitions a quotation between draft, sent and accepted.
// Converted is reserved for ConvertToBill.
func (s *QuotationService) UpdateStatus(ctx context.Context, id int, status string, userID int, role string) (*models.Quotation, error) {
	q, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ownerOrAdmin(q.OwnerID, userID, role) {
		return nil, ErrForbidden
	}
	if q.Status == models.QuotationConverted {
		return nil, fmt.Errorf("%w: quotation already converted", ErrValidation)
	}
	switch status {
	case models.QuotationDraft, models.QuotationSent, models.QuotationAccepted:
	default:
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	cache.InvalidateQuotation(ctx, id)
	return s.repo.Get(ctx, id)
}

// ConvertToBill creates a bill from the quotation through the standard
// pricing pipeline and marks the quotation converted.
func (s *QuotationService) ConvertToBill(ctx context.Context, id int, req *models.ConvertQuotationRequest, userID int, role string) (*models.Bill, error) {
	q, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ownerOrAdmin(q.OwnerID, userID, role) {
		return nil, ErrForbidden
	}
	if q.Status == models.QuotationConverted {
		return nil, fmt.Errorf("%w: quotation already converted", ErrValidation)
	}

	raw := map[string]any{
		"billType":        req.BillType,
		"customerName":    q.CustomerName,
		"customerNIC":     q.CustomerNIC,
		"customerAddress": q.CustomerAddress,
		"bikeModel":       q.BikeModel,
		"vehicleType":     q.VehicleType,
		"bikePrice":       q.BikePrice,
		"motorNumber":     req.MotorNumber,
		"chassisNumber":   req.ChassisNumber,
	}
	if req.DownPayment > 0 {
		raw["downPayment"] = req.DownPayment
	}
	if req.InventoryItemID != nil {
		raw["inventoryItemId"] = *req.InventoryItemID
	}

	bill, _, err := s.billService.CreateBill(ctx, raw, q.OwnerID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.MarkConverted(ctx, q.ID, bill.ID); err != nil {
		return nil, err
	}
	cache.InvalidateQuotation(ctx, q.ID)
	return bill, nil
}
