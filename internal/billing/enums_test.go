package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBillType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"cash", BillTypeCash},
		{"CASH", BillTypeCash},
		{"Leasing", BillTypeLeasing},
		{"advance", BillTypeAdvance},
		{"installments", BillTypeCash},
		{"", BillTypeCash},
		{"  cash  ", BillTypeCash},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeBillType(tt.input), "input %q", tt.input)
	}
}

func TestNormalizeVehicleType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"E-TRICYCLE", VehicleTypeTricycle},
		{"tricycle", VehicleTypeTricycle},
		{"electric tricycle", VehicleTypeTricycle},
		{"E-MOTORBICYCLE", VehicleTypeEbicycle},
		{"e-bicycle", VehicleTypeEbicycle},
		{"E-MOTORCYCLE", VehicleTypeMotorcycle},
		{"scooter", VehicleTypeMotorcycle},
		{"", VehicleTypeMotorcycle},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeVehicleType(tt.input), "input %q", tt.input)
	}
}

func TestNormalizeEnumsIdempotent(t *testing.T) {
	inputs := []Payload{
		{BillType: String("CASH"), VehicleType: String("tricycle")},
		{BillType: String("hire purchase"), VehicleType: String("push bicycle")},
		{BillType: String("leasing")},
		{VehicleType: String("E-MOTORCYCLE")},
		{},
	}

	for _, p := range inputs {
		once := NormalizeEnums(p)
		twice := NormalizeEnums(once)
		assert.Equal(t, once, twice)
	}
}
