package services

import (
	"context"
	"fmt"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/billing"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/cache"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/models"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/repositories"

	"github.com/go-playground/validator/v10"
)

type InventoryService struct {
	repo     *repositories.InventoryRepository
	validate *validator.Validate
}

func NewInventoryService(repo *repositories.InventoryRepository) *InventoryService {
	return &InventoryService{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *InventoryService) Create(ctx context.Context, req *models.CreateInventoryRequest) (*models.InventoryItem, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	item := &models.InventoryItem{
		BikeModel:     req.BikeModel,
		VehicleType:   billing.NormalizeVehicleType(req.VehicleType),
		MotorNumber:   req.MotorNumber,
		ChassisNumber: req.ChassisNumber,
		Price:         req.Price,
		Status:        models.InventoryAvailable,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	cache.InvalidateInventory(ctx, item.ID)
	return item, nil
}

func (s *InventoryService) Get(ctx context.Context, id int) (*models.InventoryItem, error) {
	return s.repo.Get(ctx, id)
}

func (s *InventoryService) List(ctx context.Context, status, search string) ([]*models.InventoryItem, error) {
	return s.repo.List(ctx, status, search)
}

func (s *InventoryService) Update(ctx context.Context, id int, req *models.UpdateInventoryRequest) (*models.InventoryItem, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BikeModel != "" {
		item.BikeModel = req.BikeModel
	}
	if req.VehicleType != "" {
		item.VehicleType = billing.NormalizeVehicleType(req.VehicleType)
	}
	if req.MotorNumber != "" {
		item.MotorNumber = req.MotorNumber
	}
	if req.ChassisNumber != "" {
		item.ChassisNumber = req.ChassisNumber
	}
	if req.Price > 0 {
		item.Price = req.Price
	}
	if req.Status != "" {
		item.Status = req.Status
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	cache.InvalidateInventory(ctx, item.ID)
	return item, nil
}

func (s *InventoryService) UpdateStatus(ctx context.Context, id int, req *models.UpdateInventoryStatusRequest) (*models.InventoryItem, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Status = req.Status

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	cache.InvalidateInventory(ctx, item.ID)
	return item, nil
}

func (s *InventoryService) Delete(ctx context.Context, id int) error {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	// Sold items stay on the books until their bill is deleted
	if item.Status == models.InventorySold {
		return fmt.Errorf("%w: cannot delete a sold item", ErrValidation)
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateInventory(ctx, id)
	return nil
}
