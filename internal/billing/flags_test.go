package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	count int
	err   error
	calls int
}

func (f *fakeCounter) CountTricycleBills(ctx context.Context) (int, error) {
	f.calls++
	return f.count, f.err
}

func TestApplyVehicleFlagsDerivesBooleans(t *testing.T) {
	tests := []struct {
		vehicleType string
		isTricycle  bool
		isEbicycle  bool
	}{
		{VehicleTypeTricycle, true, false},
		{VehicleTypeEbicycle, false, true},
		{VehicleTypeMotorcycle, false, false},
	}

	for _, tt := range tests {
		out, err := ApplyVehicleFlags(context.Background(), &fakeCounter{count: 5}, Payload{
			VehicleType: String(tt.vehicleType),
		})
		require.NoError(t, err)
		assert.Equal(t, tt.isTricycle, *out.IsTricycle, tt.vehicleType)
		assert.Equal(t, tt.isEbicycle, *out.IsEbicycle, tt.vehicleType)
	}
}

func TestApplyVehicleFlagsFirstTricycleSale(t *testing.T) {
	out, err := ApplyVehicleFlags(context.Background(), &fakeCounter{count: 0}, Payload{
		VehicleType: String(VehicleTypeTricycle),
	})
	require.NoError(t, err)
	require.NotNil(t, out.IsFirstTricycleSale)
	assert.True(t, *out.IsFirstTricycleSale)

	out, err = ApplyVehicleFlags(context.Background(), &fakeCounter{count: 3}, Payload{
		VehicleType: String(VehicleTypeTricycle),
	})
	require.NoError(t, err)
	assert.Nil(t, out.IsFirstTricycleSale)
}

func TestApplyVehicleFlagsSkipsCountForNonTricycles(t *testing.T) {
	counter := &fakeCounter{count: 0}
	_, err := ApplyVehicleFlags(context.Background(), counter, Payload{
		VehicleType: String(VehicleTypeMotorcycle),
	})
	require.NoError(t, err)
	assert.Zero(t, counter.calls)
}

func TestApplyVehicleFlagsWithoutVehicleType(t *testing.T) {
	counter := &fakeCounter{count: 0}
	out, err := ApplyVehicleFlags(context.Background(), counter, Payload{
		BikePrice: Number(100000),
	})
	require.NoError(t, err)
	assert.Nil(t, out.IsTricycle)
	assert.Nil(t, out.IsEbicycle)
	assert.Zero(t, counter.calls)
}

func TestApplyVehicleFlagsPropagatesStorageError(t *testing.T) {
	counter := &fakeCounter{err: errors.New("connection refused")}
	_, err := ApplyVehicleFlags(context.Background(), counter, Payload{
		VehicleType: String(VehicleTypeTricycle),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
