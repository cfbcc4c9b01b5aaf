package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePayloadMapsLegacyKeys(t *testing.T) {
	p, _ := NormalizePayload(map[string]any{
		"bill_type":      "CASH",
		"vehicle_type":   "tricycle",
		"bike_price":     "450000",
		"customer_name":  "Nimal Perera",
		"motor_number":   "MT-9981",
		"chassis_number": "CH-5521",
	})

	require.NotNil(t, p.BillType)
	assert.Equal(t, "CASH", *p.BillType)
	require.NotNil(t, p.BikePrice)
	assert.Equal(t, 450000.0, *p.BikePrice)
	require.NotNil(t, p.CustomerName)
	assert.Equal(t, "Nimal Perera", *p.CustomerName)
	assert.Equal(t, "MT-9981", *p.MotorNumber)
	assert.Equal(t, "CH-5521", *p.ChassisNumber)
}

func TestNormalizePayloadCamelCaseWinsOverLegacy(t *testing.T) {
	// Regression: a snake_case key must never override the intended
	// camelCase value when both are present.
	p, _ := NormalizePayload(map[string]any{
		"bikePrice":  350000.0,
		"bike_price": "100",
	})

	require.NotNil(t, p.BikePrice)
	assert.Equal(t, 350000.0, *p.BikePrice)
}

func TestNormalizePayloadDropsInvalidNumerics(t *testing.T) {
	p, ignored := NormalizePayload(map[string]any{
		"bike_price": "abc",
	})

	assert.Nil(t, p.BikePrice)
	assert.Contains(t, ignored, "bikePrice")
}

func TestNormalizePayloadDiscardsUnknownKeys(t *testing.T) {
	p, ignored := NormalizePayload(map[string]any{
		"foo":          "bar",
		"customerName": "Kamal",
	})

	assert.Contains(t, ignored, "foo")
	require.NotNil(t, p.CustomerName)
	assert.Equal(t, "Kamal", *p.CustomerName)
}

func TestNormalizePayloadDropsEmptyValues(t *testing.T) {
	p, _ := NormalizePayload(map[string]any{
		"customerName": "",
		"bikeModel":    "   ",
		"customerNIC":  nil,
	})

	assert.Nil(t, p.CustomerName)
	assert.Nil(t, p.BikeModel)
	assert.Nil(t, p.CustomerNIC)
}

func TestNormalizePayloadCoercesDates(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
		drop  bool
	}{
		{name: "date only", input: "2024-03-15", want: "2024-03-15T00:00:00Z"},
		{name: "rfc3339", input: "2024-03-15T10:30:00Z", want: "2024-03-15T10:30:00Z"},
		{name: "time value", input: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), want: "2024-03-15T00:00:00Z"},
		{name: "garbage", input: "not-a-date", drop: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ignored := NormalizePayload(map[string]any{"billDate": tt.input})
			if tt.drop {
				assert.Nil(t, p.BillDate)
				assert.Contains(t, ignored, "billDate")
				return
			}
			require.NotNil(t, p.BillDate)
			assert.Equal(t, tt.want, *p.BillDate)
		})
	}
}

func TestNormalizePayloadNumericCoercion(t *testing.T) {
	p, _ := NormalizePayload(map[string]any{
		"bikePrice":   "250000.50",
		"downPayment": 100000,
		"totalAmount": int64(313000),
	})

	require.NotNil(t, p.BikePrice)
	assert.Equal(t, 250000.50, *p.BikePrice)
	require.NotNil(t, p.DownPayment)
	assert.Equal(t, 100000.0, *p.DownPayment)
	require.NotNil(t, p.TotalAmount)
	assert.Equal(t, 313000.0, *p.TotalAmount)
}

func TestNormalizePayloadInventoryItemID(t *testing.T) {
	p, _ := NormalizePayload(map[string]any{"inventory_item_id": 42.0})
	require.NotNil(t, p.InventoryItemID)
	assert.Equal(t, 42, *p.InventoryItemID)

	p, ignored := NormalizePayload(map[string]any{"inventoryItemId": "x"})
	assert.Nil(t, p.InventoryItemID)
	assert.Contains(t, ignored, "inventoryItemId")
}

func TestMergePatchWins(t *testing.T) {
	base := Payload{
		BillType:  String(BillTypeCash),
		BikePrice: Number(300000),
		BikeModel: String("TMR-01"),
	}
	patch := Payload{
		BikePrice: Number(325000),
	}

	merged := Merge(base, patch)
	assert.Equal(t, 325000.0, *merged.BikePrice)
	assert.Equal(t, BillTypeCash, *merged.BillType)
	assert.Equal(t, "TMR-01", *merged.BikeModel)
}
