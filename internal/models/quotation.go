package models

import "time"

// Quotation statuses
const (
	QuotationDraft     = "draft"
	QuotationSent      = "sent"
	QuotationAccepted  = "accepted"
	QuotationConverted = "converted"
)

// Quotation is a priced offer that may later convert into a bill.
type Quotation struct {
	ID              int        `json:"id"`
	QuotationNumber string     `json:"quotation_number"`
	CustomerName    string     `json:"customer_name"`
	CustomerNIC     string     `json:"customer_nic"`
	CustomerAddress string     `json:"customer_address"`
	BikeModel       string     `json:"bike_model"`
	VehicleType     string     `json:"vehicle_type"`
	BikePrice       float64    `json:"bike_price"`
	TotalAmount     float64    `json:"total_amount"`
	ValidUntil      *time.Time `json:"valid_until,omitempty"`
	Status          string     `json:"status"`
	OwnerID         int        `json:"owner_id"`
	BillID          *int       `json:"bill_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CreateQuotationRequest is the request body for a new quotation.
type CreateQuotationRequest struct {
	CustomerName    string  `json:"customer_name" validate:"required"`
	CustomerNIC     string  `json:"customer_nic"`
	CustomerAddress string  `json:"customer_address"`
	BikeModel       string  `json:"bike_model" validate:"required"`
	VehicleType     string  `json:"vehicle_type"`
	BikePrice       float64 `json:"bike_price" validate:"gte=0"`
	ValidDays       int     `json:"valid_days" validate:"omitempty,gte=1,lte=90"`
}

// ConvertQuotationRequest carries the bill fields the quotation lacks.
type ConvertQuotationRequest struct {
	BillType        string  `json:"bill_type"`
	MotorNumber     string  `json:"motor_number"`
	ChassisNumber   string  `json:"chassis_number"`
	DownPayment     float64 `json:"down_payment"`
	InventoryItemID *int    `json:"inventory_item_id,omitempty"`
}
