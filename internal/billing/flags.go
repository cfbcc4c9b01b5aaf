package billing

import (
	"context"
	"fmt"
)

// TricycleCounter is the one storage collaborator the pipeline needs: the
// system-wide count of bills already classified as tricycle sales. The
// count is global, never owner-scoped.
type TricycleCounter interface {
	CountTricycleBills(ctx context.Context) (int, error)
}

// ApplyVehicleFlags derives the boolean vehicle classification from the
// normalized vehicle type, and marks the first-ever tricycle sale in the
// system. A payload without a vehicle type passes through untouched.
//
// The count read and the eventual bill write are separate operations with no
// lock between them; the create-bill flow closes that window with an atomic
// counter claim inside its transaction, the update flow deliberately does
// not.
func ApplyVehicleFlags(ctx context.Context, counter TricycleCounter, p Payload) (Payload, error) {
	if p.VehicleType == nil {
		return p, nil
	}

	isTricycle := *p.VehicleType == VehicleTypeTricycle
	isEbicycle := *p.VehicleType == VehicleTypeEbicycle
	p.IsTricycle = &isTricycle
	p.IsEbicycle = &isEbicycle

	if isTricycle && counter != nil {
		n, err := counter.CountTricycleBills(ctx)
		if err != nil {
			return p, fmt.Errorf("count tricycle bills: %w", err)
		}
		if n == 0 {
			p.IsFirstTricycleSale = Bool(true)
		}
	}

	return p, nil
}
