package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRMVWaivedForExemptVehicles(t *testing.T) {
	for _, billType := range []string{BillTypeCash, BillTypeLeasing, BillTypeAdvance} {
		for _, p := range []Payload{
			{BillType: String(billType), IsTricycle: Bool(true)},
			{BillType: String(billType), IsEbicycle: Bool(true)},
		} {
			out := ComputeRMV(p)
			require.NotNil(t, out.RMVCharge)
			assert.Equal(t, 0.0, *out.RMVCharge, "bill type %s", billType)
		}
	}
}

func TestComputeRMVByBillType(t *testing.T) {
	out := ComputeRMV(Payload{BillType: String(BillTypeCash)})
	require.NotNil(t, out.RMVCharge)
	assert.Equal(t, 13000.0, *out.RMVCharge)

	out = ComputeRMV(Payload{BillType: String(BillTypeLeasing)})
	require.NotNil(t, out.RMVCharge)
	assert.Equal(t, 13500.0, *out.RMVCharge)

	// Advance bills leave the charge unset.
	out = ComputeRMV(Payload{BillType: String(BillTypeAdvance)})
	assert.Nil(t, out.RMVCharge)
}

func TestComputeTotalsCash(t *testing.T) {
	out := ComputeTotals(Payload{
		BillType:  String(BillTypeCash),
		BikePrice: Number(300000),
		RMVCharge: Number(13000),
	})

	require.NotNil(t, out.TotalAmount)
	assert.Equal(t, 313000.0, *out.TotalAmount)
	require.NotNil(t, out.Status)
	assert.Equal(t, StatusCompleted, *out.Status)
}

func TestComputeTotalsEbicycleCash(t *testing.T) {
	p := Payload{
		BillType:   String(BillTypeCash),
		IsEbicycle: Bool(true),
		BikePrice:  Number(250000),
	}
	out := ComputeTotals(ComputeRMV(p))

	require.NotNil(t, out.TotalAmount)
	assert.Equal(t, 250000.0, *out.TotalAmount)
	assert.Equal(t, StatusCompleted, *out.Status)
}

func TestComputeTotalsLeasingMirrorsDownPayment(t *testing.T) {
	out := ComputeTotals(Payload{
		BillType:    String(BillTypeLeasing),
		BikePrice:   Number(400000),
		RMVCharge:   Number(13500),
		DownPayment: Number(100000),
	})

	require.NotNil(t, out.TotalAmount)
	assert.Equal(t, 100000.0, *out.TotalAmount)
	assert.Equal(t, 100000.0, *out.DownPayment)
	assert.Equal(t, StatusCompleted, *out.Status)
}

func TestComputeTotalsAdvanceBalance(t *testing.T) {
	out := ComputeTotals(Payload{
		BillType:    String(BillTypeAdvance),
		BikePrice:   Number(450000),
		DownPayment: Number(100000),
	})

	require.NotNil(t, out.TotalAmount)
	assert.Equal(t, 450000.0, *out.TotalAmount)
	require.NotNil(t, out.BalanceAmount)
	assert.Equal(t, 350000.0, *out.BalanceAmount)
	require.NotNil(t, out.Status)
	assert.Equal(t, StatusPending, *out.Status)
}

func TestComputeTotalsOverwritesClientStatus(t *testing.T) {
	out := ComputeTotals(Payload{
		BillType:    String(BillTypeCash),
		BikePrice:   Number(100000),
		RMVCharge:   Number(13000),
		Status:      String(StatusCancelled),
		TotalAmount: Number(1),
	})

	assert.Equal(t, StatusCompleted, *out.Status)
	assert.Equal(t, 113000.0, *out.TotalAmount)
}
