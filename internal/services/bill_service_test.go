package services

import (
	"testing"
	"time"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/billing"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadFromBillRoundTrip(t *testing.T) {
	delivery := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)
	itemID := 9
	bill := &models.Bill{
		BillType:              "leasing",
		VehicleType:           "E-MOTORCYCLE",
		BikeModel:             "TMR-G18",
		CustomerName:          "Kamal Perera",
		CustomerNIC:           "902541234V",
		CustomerAddress:       "Embilipitiya",
		MotorNumber:           "MT-1",
		ChassisNumber:         "CH-1",
		BikePrice:             400000,
		RMVCharge:             13500,
		DownPayment:           120000,
		TotalAmount:           120000,
		BillDate:              time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		EstimatedDeliveryDate: &delivery,
		InventoryItemID:       &itemID,
		IsTricycle:            false,
		Status:                "completed",
	}

	p := payloadFromBill(bill)

	var restored models.Bill
	require.NoError(t, applyPayload(&restored, p))

	assert.Equal(t, bill.BillType, restored.BillType)
	assert.Equal(t, bill.BikeModel, restored.BikeModel)
	assert.Equal(t, bill.BikePrice, restored.BikePrice)
	assert.Equal(t, bill.DownPayment, restored.DownPayment)
	assert.True(t, bill.BillDate.Equal(restored.BillDate))
	require.NotNil(t, restored.EstimatedDeliveryDate)
	assert.True(t, delivery.Equal(*restored.EstimatedDeliveryDate))
	require.NotNil(t, restored.InventoryItemID)
	assert.Equal(t, itemID, *restored.InventoryItemID)
	assert.Equal(t, bill.Status, restored.Status)
}

func TestApplyPayloadLeavesUnsetFieldsAlone(t *testing.T) {
	bill := &models.Bill{
		BikeModel:    "TMR-N7",
		CustomerName: "Nimal Silva",
		BikePrice:    250000,
		Status:       "completed",
	}

	patch := billing.Payload{
		CustomerName: billing.String("Nimal S. Silva"),
	}
	require.NoError(t, applyPayload(bill, patch))

	assert.Equal(t, "Nimal S. Silva", bill.CustomerName)
	assert.Equal(t, "TMR-N7", bill.BikeModel)
	assert.Equal(t, float64(250000), bill.BikePrice)
	assert.Equal(t, "completed", bill.Status)
}

func TestOwnerOrAdminAccessScope(t *testing.T) {
	cases := []struct {
		name    string
		ownerID int
		userID  int
		role    string
		want    bool
	}{
		{"owner reads own record", 7, 7, "staff", true},
		{"staff blocked from another owner's record", 7, 8, "staff", false},
		{"admin reads any record", 7, 8, "admin", true},
		{"admin reads own record", 3, 3, "admin", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ownerOrAdmin(tc.ownerID, tc.userID, tc.role))
		})
	}
}

func TestApplyPayloadRejectsBadDate(t *testing.T) {
	bill := &models.Bill{}
	patch := billing.Payload{BillDate: billing.String("not-a-date")}
	assert.Error(t, applyPayload(bill, patch))
}
