package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineCashBillEndToEnd(t *testing.T) {
	pl := NewPipeline(&fakeCounter{count: 7})

	out, ignored, err := pl.Run(context.Background(), map[string]any{
		"bill_type":     "CASH",
		"vehicle_type":  "e-motorcycle",
		"bike_price":    "300000",
		"customer_name": "Sunil Fernando",
		"garbage_key":   true,
	})
	require.NoError(t, err)

	assert.Contains(t, ignored, "garbage_key")
	assert.Equal(t, BillTypeCash, *out.BillType)
	assert.Equal(t, VehicleTypeMotorcycle, *out.VehicleType)
	assert.False(t, *out.IsTricycle)
	assert.False(t, *out.IsEbicycle)
	assert.Equal(t, 13000.0, *out.RMVCharge)
	assert.Equal(t, 313000.0, *out.TotalAmount)
	assert.Equal(t, StatusCompleted, *out.Status)
}

func TestPipelineFirstTricycleSale(t *testing.T) {
	pl := NewPipeline(&fakeCounter{count: 0})

	out, _, err := pl.Run(context.Background(), map[string]any{
		"billType":    "cash",
		"vehicleType": "tricycle",
		"bikePrice":   500000.0,
	})
	require.NoError(t, err)

	assert.True(t, *out.IsTricycle)
	require.NotNil(t, out.IsFirstTricycleSale)
	assert.True(t, *out.IsFirstTricycleSale)
	assert.Equal(t, 0.0, *out.RMVCharge)
	assert.Equal(t, 500000.0, *out.TotalAmount)
}

func TestPipelineAdvanceOverMergedBill(t *testing.T) {
	pl := NewPipeline(&fakeCounter{count: 2})

	// An update patch merged over an existing advance bill: only the down
	// payment changes, totals are recomputed from the merged state.
	base := Payload{
		BillType:    String(BillTypeAdvance),
		VehicleType: String(VehicleTypeMotorcycle),
		BikePrice:   Number(450000),
		DownPayment: Number(50000),
	}
	patch, _ := NormalizePayload(map[string]any{"downPayment": "100000"})

	out, err := pl.Price(context.Background(), Merge(base, patch))
	require.NoError(t, err)

	assert.Equal(t, 450000.0, *out.TotalAmount)
	assert.Equal(t, 100000.0, *out.DownPayment)
	assert.Equal(t, 350000.0, *out.BalanceAmount)
	assert.Equal(t, StatusPending, *out.Status)
}
