package billing

import "strings"

// NormalizeBillType clamps free text to the closed bill-type vocabulary.
// Unrecognized input falls back to cash rather than erroring.
func NormalizeBillType(v string) string {
	switch t := strings.ToLower(strings.TrimSpace(v)); t {
	case BillTypeCash, BillTypeLeasing, BillTypeAdvance:
		return t
	default:
		return BillTypeCash
	}
}

// NormalizeVehicleType clamps free text to the closed vehicle-type
// vocabulary by substring containment: anything mentioning a tricycle is an
// E-TRICYCLE, anything mentioning a bicycle is an E-MOTORBICYCLE, and
// everything else (including empty input) is an E-MOTORCYCLE.
func NormalizeVehicleType(v string) string {
	u := strings.ToUpper(strings.TrimSpace(v))
	switch {
	case strings.Contains(u, "TRICYCLE"):
		return VehicleTypeTricycle
	case strings.Contains(u, "BICYCLE"):
		return VehicleTypeEbicycle
	default:
		return VehicleTypeMotorcycle
	}
}

// NormalizeEnums applies both clamps to a payload. Absent fields stay
// absent. Idempotent: the normalized values are members of their own
// vocabularies, so a second pass is a no-op.
func NormalizeEnums(p Payload) Payload {
	if p.BillType != nil {
		t := NormalizeBillType(*p.BillType)
		p.BillType = &t
	}
	if p.VehicleType != nil {
		v := NormalizeVehicleType(*p.VehicleType)
		p.VehicleType = &v
	}
	return p
}
