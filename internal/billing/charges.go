package billing

// ComputeRMV derives the government registration charge from the vehicle
// classification and bill type. E-bicycles and tricycles are exempt
// regardless of bill type. For advance bills (and any residual bill type)
// the charge is left unchanged from the input.
func ComputeRMV(p Payload) Payload {
	if boolVal(p.IsTricycle) || boolVal(p.IsEbicycle) {
		p.RMVCharge = Number(0)
		return p
	}

	switch strVal(p.BillType) {
	case BillTypeCash:
		p.RMVCharge = Number(RMVChargeCash)
	case BillTypeLeasing:
		p.RMVCharge = Number(RMVChargeLeasing)
	}
	return p
}

// ComputeTotals derives the final monetary fields and lifecycle status from
// the bike price, registration charge and payment plan. It always overwrites
// status and totalAmount (and, for leasing and advance, downPayment and
// balanceAmount) - clients cannot set those directly.
//
// Leasing records only the down payment as the total: the dealer receives
// the down payment up front and the financier settles the rest outside this
// bill. The advance branch intentionally mirrors the original product
// behavior of excluding the registration charge from the total.
func ComputeTotals(p Payload) Payload {
	bp := numVal(p.BikePrice)
	rmv := numVal(p.RMVCharge)
	dp := numVal(p.DownPayment)

	switch strVal(p.BillType) {
	case BillTypeLeasing:
		p.TotalAmount = Number(dp)
		p.DownPayment = Number(dp)
	case BillTypeAdvance:
		p.TotalAmount = Number(bp)
		p.DownPayment = Number(dp)
		p.BalanceAmount = Number(bp - dp)
	default:
		if boolVal(p.IsEbicycle) || boolVal(p.IsTricycle) {
			p.TotalAmount = Number(bp)
		} else {
			p.TotalAmount = Number(bp + rmv)
		}
	}

	if strVal(p.BillType) == BillTypeAdvance {
		p.Status = String(StatusPending)
	} else {
		p.Status = String(StatusCompleted)
	}
	return p
}
