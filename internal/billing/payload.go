package billing

// Bill type vocabulary. Anything else is clamped to cash.
const (
	BillTypeCash    = "cash"
	BillTypeLeasing = "leasing"
	BillTypeAdvance = "advance"
)

// Vehicle type vocabulary. Free text is clamped by substring match.
const (
	VehicleTypeMotorcycle = "E-MOTORCYCLE"
	VehicleTypeEbicycle   = "E-MOTORBICYCLE"
	VehicleTypeTricycle   = "E-TRICYCLE"
)

// Bill lifecycle statuses. The pricing pipeline only ever emits pending or
// completed; cancelled and converted are set by the status-update and
// quotation-conversion flows.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusConverted = "converted"
)

// Government registration (RMV) charges in rupees.
const (
	RMVChargeCash    = 13000
	RMVChargeLeasing = 13500
)

// Payload is the canonical sparse bill patch that flows through the pricing
// pipeline. A nil field means "not supplied" - stages only set fields, they
// never clear them, so a Payload can be safely merged over an existing bill.
type Payload struct {
	BillType    *string
	VehicleType *string
	BikeModel   *string

	CustomerName    *string
	CustomerNIC     *string
	CustomerAddress *string

	MotorNumber   *string
	ChassisNumber *string

	BikePrice     *float64
	RMVCharge     *float64
	DownPayment   *float64
	BalanceAmount *float64
	TotalAmount   *float64

	BillDate              *string
	EstimatedDeliveryDate *string

	InventoryItemID *int

	IsEbicycle          *bool
	IsTricycle          *bool
	IsFirstTricycleSale *bool

	Status *string
}

// Merge overlays patch on top of base: every field set in patch wins,
// everything else is carried over from base.
func Merge(base, patch Payload) Payload {
	out := base
	if patch.BillType != nil {
		out.BillType = patch.BillType
	}
	if patch.VehicleType != nil {
		out.VehicleType = patch.VehicleType
	}
	if patch.BikeModel != nil {
		out.BikeModel = patch.BikeModel
	}
	if patch.CustomerName != nil {
		out.CustomerName = patch.CustomerName
	}
	if patch.CustomerNIC != nil {
		out.CustomerNIC = patch.CustomerNIC
	}
	if patch.CustomerAddress != nil {
		out.CustomerAddress = patch.CustomerAddress
	}
	if patch.MotorNumber != nil {
		out.MotorNumber = patch.MotorNumber
	}
	if patch.ChassisNumber != nil {
		out.ChassisNumber = patch.ChassisNumber
	}
	if patch.BikePrice != nil {
		out.BikePrice = patch.BikePrice
	}
	if patch.RMVCharge != nil {
		out.RMVCharge = patch.RMVCharge
	}
	if patch.DownPayment != nil {
		out.DownPayment = patch.DownPayment
	}
	if patch.BalanceAmount != nil {
		out.BalanceAmount = patch.BalanceAmount
	}
	if patch.TotalAmount != nil {
		out.TotalAmount = patch.TotalAmount
	}
	if patch.BillDate != nil {
		out.BillDate = patch.BillDate
	}
	if patch.EstimatedDeliveryDate != nil {
		out.EstimatedDeliveryDate = patch.EstimatedDeliveryDate
	}
	if patch.InventoryItemID != nil {
		out.InventoryItemID = patch.InventoryItemID
	}
	if patch.IsEbicycle != nil {
		out.IsEbicycle = patch.IsEbicycle
	}
	if patch.IsTricycle != nil {
		out.IsTricycle = patch.IsTricycle
	}
	if patch.IsFirstTricycleSale != nil {
		out.IsFirstTricycleSale = patch.IsFirstTricycleSale
	}
	if patch.Status != nil {
		out.Status = patch.Status
	}
	return out
}

// Pointer constructors, for building payloads by hand.

func String(s string) *string { return &s }

func Number(v float64) *float64 { return &v }

func Bool(b bool) *bool { return &b }

func Int(i int) *int { return &i }

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func numVal(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func boolVal(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}
