package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/billing"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/cache"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/metrics"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/models"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/repositories"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/timeutil"
)

var (
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
)

// ownerOrAdmin reports whether the requester may access a record owned by
// ownerID. Staff see only their own records; admins see everything.
func ownerOrAdmin(ownerID, userID int, role string) bool {
	return role == "admin" || ownerID == userID
}

type BillService struct {
	billRepo      *repositories.BillRepository
	inventoryRepo *repositories.InventoryRepository
	pipeline      *billing.Pipeline
}

func NewBillService(billRepo *repositories.BillRepository, inventoryRepo *repositories.InventoryRepository) *BillService {
	return &BillService{
		billRepo:      billRepo,
		inventoryRepo: inventoryRepo,
		// The bill repository is the pipeline's tricycle counter
		pipeline: billing.NewPipeline(billRepo),
	}
}

// payloadFromBill projects a stored bill into the canonical patch format
// so an update request can be merged over it and re-priced.
func payloadFromBill(b *models.Bill) billing.Payload {
	p := billing.Payload{
		BillType:            billing.String(b.BillType),
		VehicleType:         billing.String(b.VehicleType),
		BikeModel:           billing.String(b.BikeModel),
		CustomerName:        billing.String(b.CustomerName),
		CustomerNIC:         billing.String(b.CustomerNIC),
		CustomerAddress:     billing.String(b.CustomerAddress),
		MotorNumber:         billing.String(b.MotorNumber),
		ChassisNumber:       billing.String(b.ChassisNumber),
		BikePrice:           billing.Number(b.BikePrice),
		RMVCharge:           billing.Number(b.RMVCharge),
		DownPayment:         billing.Number(b.DownPayment),
		BalanceAmount:       billing.Number(b.BalanceAmount),
		TotalAmount:         billing.Number(b.TotalAmount),
		BillDate:            billing.String(b.BillDate.Format(time.RFC3339)),
		IsEbicycle:          billing.Bool(b.IsEbicycle),
		IsTricycle:          billing.Bool(b.IsTricycle),
		IsFirstTricycleSale: billing.Bool(b.IsFirstTricycleSale),
		Status:              billing.String(b.Status),
	}
	if b.EstimatedDeliveryDate != nil {
		p.EstimatedDeliveryDate = billing.String(b.EstimatedDeliveryDate.Format(time.RFC3339))
	}
	if b.InventoryItemID != nil {
		p.InventoryItemID = billing.Int(*b.InventoryItemID)
	}
	return p
}

// applyPayload writes a priced payload back onto a bill
func applyPayload(b *models.Bill, p billing.Payload) error {
	if p.BillType != nil {
		b.BillType = *p.BillType
	}
	if p.VehicleType != nil {
		b.VehicleType = *p.VehicleType
	}
	if p.BikeModel != nil {
		b.BikeModel = *p.BikeModel
	}
	if p.CustomerName != nil {
		b.CustomerName = *p.CustomerName
	}
	if p.CustomerNIC != nil {
		b.CustomerNIC = *p.CustomerNIC
	}
	if p.CustomerAddress != nil {
		b.CustomerAddress = *p.CustomerAddress
	}
	if p.MotorNumber != nil {
		b.MotorNumber = *p.MotorNumber
	}
	if p.ChassisNumber != nil {
		b.ChassisNumber = *p.ChassisNumber
	}
	if p.BikePrice != nil {
		b.BikePrice = *p.BikePrice
	}
	if p.RMVCharge != nil {
		b.RMVCharge = *p.RMVCharge
	}
	if p.DownPayment != nil {
		b.DownPayment = *p.DownPayment
	}
	if p.BalanceAmount != nil {
		b.BalanceAmount = *p.BalanceAmount
	}
	if p.TotalAmount != nil {
		b.TotalAmount = *p.TotalAmount
	}
	if p.BillDate != nil {
		t, err := time.Parse(time.RFC3339, *p.BillDate)
		if err != nil {
			return fmt.Errorf("parse bill date: %w", err)
		}
		b.BillDate = t
	}
	if p.EstimatedDeliveryDate != nil {
		t, err := time.Parse(time.RFC3339, *p.EstimatedDeliveryDate)
		if err != nil {
			return fmt.Errorf("parse estimated delivery date: %w", err)
		}
		b.EstimatedDeliveryDate = &t
	}
	if p.InventoryItemID != nil {
		b.InventoryItemID = p.InventoryItemID
	}
	if p.IsEbicycle != nil {
		b.IsEbicycle = *p.IsEbicycle
	}
	if p.IsTricycle != nil {
		b.IsTricycle = *p.IsTricycle
	}
	if p.IsFirstTricycleSale != nil {
		b.IsFirstTricycleSale = *p.IsFirstTricycleSale
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	return nil
}

// fillFromInventory copies vehicle fields from a linked inventory item
// into the payload where the request left them blank
func (s *BillService) fillFromInventory(ctx context.Context, p billing.Payload) (billing.Payload, error) {
	if p.InventoryItemID == nil {
		return p, nil
	}
	item, err := s.inventoryRepo.Get(ctx, *p.InventoryItemID)
	if err != nil {
		return p, fmt.Errorf("inventory item %d: %w", *p.InventoryItemID, err)
	}
	if p.BikeModel == nil {
		p.BikeModel = billing.String(item.BikeModel)
	}
	if p.VehicleType == nil {
		p.VehicleType = billing.String(item.VehicleType)
	}
	if p.BikePrice == nil {
		p.BikePrice = billing.Number(item.Price)
	}
	if p.MotorNumber == nil {
		p.MotorNumber = billing.String(item.MotorNumber)
	}
	if p.ChassisNumber == nil {
		p.ChassisNumber = billing.String(item.ChassisNumber)
	}
	return p, nil
}

// CreateBill normalizes and prices a raw request body, then persists the
// bill. Returns the bill and the list of request keys that were ignored.
func (s *BillService) CreateBill(ctx context.Context, raw map[string]any, ownerID int) (*models.Bill, []string, error) {
	p, ignored := billing.NormalizePayload(raw)

	p, err := s.fillFromInventory(ctx, p)
	if err != nil {
		return nil, ignored, err
	}

	if p.CustomerName == nil || *p.CustomerName == "" {
		return nil, ignored, fmt.Errorf("%w: customer_name is required", ErrValidation)
	}
	if p.BikeModel == nil || *p.BikeModel == "" {
		return nil, ignored, fmt.Errorf("%w: bike_model is required", ErrValidation)
	}
	if p.BikePrice == nil {
		return nil, ignored, fmt.Errorf("%w: bike_price is required", ErrValidation)
	}

	p, err = s.pipeline.Price(ctx, p)
	if err != nil {
		return nil, ignored, err
	}

	bill := &models.Bill{
		OwnerID:  ownerID,
		BillDate: timeutil.Now(),
	}
	if err := applyPayload(bill, p); err != nil {
		return nil, ignored, err
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, ignored, err
	}

	metrics.BillsCreatedTotal.WithLabelValues(bill.BillType).Inc()
	cache.InvalidateBill(ctx, bill.ID)
	if bill.InventoryItemID != nil {
		cache.InvalidateInventory(ctx, *bill.InventoryItemID)
	}
	return bill, ignored, nil
}

// UpdateBill merges a raw patch over the stored bill, re-prices and saves.
// Staff can only touch their own bills; admins can touch any.
func (s *BillService) UpdateBill(ctx context.Context, id int, raw map[string]any, userID int, role string) (*models.Bill, []string, error) {
	bill, err := s.billRepo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !ownerOrAdmin(bill.OwnerID, userID, role) {
		return nil, nil, ErrForbidden
	}

	patch, ignored := billing.NormalizePayload(raw)
	merged := billing.Merge(payloadFromBill(bill), patch)

	priced, err := s.pipeline.Price(ctx, merged)
	if err != nil {
		return nil, ignored, err
	}

	if err := applyPayload(bill, priced); err != nil {
		return nil, ignored, err
	}
	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, ignored, err
	}

	cache.InvalidateBill(ctx, bill.ID)
	return bill, ignored, nil
}

// UpdateStatus applies a status transition and syncs the linked inventory item
func (s *BillService) UpdateStatus(ctx context.Context, id int, status string, userID int, role string) (*models.Bill, error) {
	bill, err := s.billRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ownerOrAdmin(bill.OwnerID, userID, role) {
		return nil, ErrForbidden
	}

	if err := s.billRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	cache.InvalidateBill(ctx, id)
	return s.billRepo.Get(ctx, id)
}

// DeleteBill soft-deletes a bill and releases its inventory item
func (s *BillService) DeleteBill(ctx context.Context, id, userID int, role string) error {
	bill, err := s.billRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !ownerOrAdmin(bill.OwnerID, userID, role) {
		return ErrForbidden
	}

	if err := s.billRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateBill(ctx, id)
	if bill.InventoryItemID != nil {
		cache.InvalidateInventory(ctx, *bill.InventoryItemID)
	}
	return nil
}

const billCacheTTL = 5 * time.Minute

// Get returns one bill, read-scoped to its owner or an admin. The cache
// key is not owner-scoped, so the scope check runs on the fetched bill.
func (s *BillService) Get(ctx context.Context, id, userID int, role string) (*models.Bill, error) {
	key := fmt.Sprintf(cache.BillKeyFmt, id)
	if data, ok := cache.GetCached(ctx, key); ok {
		var bill models.Bill
		if err := json.Unmarshal(data, &bill); err == nil {
			if !ownerOrAdmin(bill.OwnerID, userID, role) {
				return nil, ErrForbidden
			}
			return &bill, nil
		}
	}

	bill, err := s.billRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(bill); err == nil {
		cache.SetCached(ctx, key, data, billCacheTTL)
	}
	if !ownerOrAdmin(bill.OwnerID, userID, role) {
		return nil, ErrForbidden
	}
	return bill, nil
}

// GetByNumber is read-scoped the same way Get is
func (s *BillService) GetByNumber(ctx context.Context, billNumber string, userID int, role string) (*models.Bill, error) {
	bill, err := s.billRepo.GetByNumber(ctx, billNumber)
	if err != nil {
		return nil, err
	}
	if !ownerOrAdmin(bill.OwnerID, userID, role) {
		return nil, ErrForbidden
	}
	return bill, nil
}

// List scopes staff to their own bills; admins see everything
func (s *BillService) List(ctx context.Context, userID int, role, status, search string, limit, offset int) ([]*models.Bill, error) {
	f := repositories.ListFilter{
		Status: status,
		Search: search,
		Limit:  limit,
		Offset: offset,
	}
	if role != "admin" {
		f.OwnerID = &userID
	}
	return s.billRepo.List(ctx, f)
}
