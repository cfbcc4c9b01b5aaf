package models

import "time"

// Bill statuses
const (
	BillStatusPending   = "pending"
	BillStatusCompleted = "completed"
	BillStatusCancelled = "cancelled"
	BillStatusConverted = "converted"
)

// Bill represents one vehicle sales transaction.
type Bill struct {
	ID         int    `json:"id"`
	BillNumber string `json:"bill_number"`

	BillType    string `json:"bill_type"`    // cash, leasing or advance
	VehicleType string `json:"vehicle_type"` // E-MOTORCYCLE, E-MOTORBICYCLE or E-TRICYCLE

	BikeModel string  `json:"bike_model"`
	BikePrice float64 `json:"bike_price"`
	RMVCharge float64 `json:"rmv_charge"`

	DownPayment   float64 `json:"down_payment"`
	BalanceAmount float64 `json:"balance_amount"`
	TotalAmount   float64 `json:"total_amount"`

	CustomerName    string `json:"customer_name"`
	CustomerNIC     string `json:"customer_nic"`
	CustomerAddress string `json:"customer_address"`

	// Unique across non-deleted inventory
	MotorNumber   string `json:"motor_number"`
	ChassisNumber string `json:"chassis_number"`

	BillDate              time.Time  `json:"bill_date"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date,omitempty"`

	IsEbicycle          bool `json:"is_ebicycle"`
	IsTricycle          bool `json:"is_tricycle"`
	IsFirstTricycleSale bool `json:"is_first_tricycle_sale"`

	Status  string `json:"status"` // pending, completed, cancelled, converted
	OwnerID int    `json:"owner_id"`

	InventoryItemID *int `json:"inventory_item_id,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// UpdateBillStatusRequest is the body of the dedicated status transition.
type UpdateBillStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed cancelled converted"`
}
