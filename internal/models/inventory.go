package models

import "time"

// Inventory item statuses
const (
	InventoryAvailable = "available"
	InventoryReserved  = "reserved"
	InventorySold      = "sold"
)

// InventoryItem represents one vehicle in stock.
type InventoryItem struct {
	ID            int        `json:"id"`
	BikeModel     string     `json:"bike_model"`
	VehicleType   string     `json:"vehicle_type"`
	MotorNumber   string     `json:"motor_number"`
	ChassisNumber string     `json:"chassis_number"`
	Price         float64    `json:"price"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"-"`
}

// CreateInventoryRequest is the request body for adding stock.
type CreateInventoryRequest struct {
	BikeModel     string  `json:"bike_model" validate:"required"`
	VehicleType   string  `json:"vehicle_type" validate:"required"`
	MotorNumber   string  `json:"motor_number" validate:"required"`
	ChassisNumber string  `json:"chassis_number" validate:"required"`
	Price         float64 `json:"price" validate:"gte=0"`
}

// UpdateInventoryRequest is the request body for editing an item.
type UpdateInventoryRequest struct {
	BikeModel     string  `json:"bike_model"`
	VehicleType   string  `json:"vehicle_type"`
	MotorNumber   string  `json:"motor_number"`
	ChassisNumber string  `json:"chassis_number"`
	Price         float64 `json:"price" validate:"gte=0"`
	Status        string  `json:"status" validate:"omitempty,oneof=available reserved sold"`
}

// UpdateInventoryStatusRequest is the request body for the status endpoint.
type UpdateInventoryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available reserved sold"`
}
