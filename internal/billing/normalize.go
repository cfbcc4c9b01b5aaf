package billing

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// alternateKeys maps legacy snake_case payload keys to their canonical
// camelCase names. An alternate is only consulted when the canonical key is
// absent from the raw payload - a canonical key always wins, even over a
// populated alternate.
var alternateKeys = map[string]string{
	"bill_type":               "billType",
	"vehicle_type":            "vehicleType",
	"bike_model":              "bikeModel",
	"customer_name":           "customerName",
	"customer_nic":            "customerNIC",
	"customer_address":        "customerAddress",
	"motor_number":            "motorNumber",
	"chassis_number":          "chassisNumber",
	"bike_price":              "bikePrice",
	"down_payment":            "downPayment",
	"balance_amount":          "balanceAmount",
	"total_amount":            "totalAmount",
	"bill_date":               "billDate",
	"estimated_delivery_date": "estimatedDeliveryDate",
	"inventory_item_id":       "inventoryItemId",
}

var canonicalKeys = map[string]bool{
	"billType":              true,
	"vehicleType":           true,
	"bikeModel":             true,
	"customerName":          true,
	"customerNIC":           true,
	"customerAddress":       true,
	"motorNumber":           true,
	"chassisNumber":         true,
	"bikePrice":             true,
	"downPayment":           true,
	"balanceAmount":         true,
	"totalAmount":           true,
	"billDate":              true,
	"estimatedDeliveryDate": true,
	"inventoryItemId":       true,
}

// legacyNames is the reverse of alternateKeys: canonical name -> legacy key.
var legacyNames = func() map[string]string {
	m := make(map[string]string, len(alternateKeys))
	for alt, canonical := range alternateKeys {
		m[canonical] = alt
	}
	return m
}()

// Date layouts accepted for bill_date / estimated_delivery_date values.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02-01-2006",
}

// NormalizePayload converts an arbitrary-shaped request body into the
// canonical sparse patch. Only the recognized field set survives: unknown
// keys are discarded, string-encoded numbers are coerced, date-like values
// are serialized to RFC 3339, and empty or unparseable values are dropped
// instead of rejected. The returned slice names every key that was dropped,
// for logging - a malformed field never fails the request.
func NormalizePayload(raw map[string]any) (Payload, []string) {
	var p Payload
	var ignored []string

	resolve := func(canonical string) (any, bool) {
		if v, ok := raw[canonical]; ok {
			return v, true
		}
		if alt, ok := legacyNames[canonical]; ok {
			if v, ok := raw[alt]; ok {
				return v, true
			}
		}
		return nil, false
	}

	setString := func(key string, dst **string) {
		v, ok := resolve(key)
		if !ok || v == nil {
			return
		}
		s, ok := v.(string)
		if !ok {
			ignored = append(ignored, key)
			return
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		*dst = &s
	}

	setNumber := func(key string, dst **float64) {
		v, ok := resolve(key)
		if !ok || v == nil {
			return
		}
		n, ok := toNumber(v)
		if !ok {
			ignored = append(ignored, key)
			return
		}
		*dst = &n
	}

	setDate := func(key string, dst **string) {
		v, ok := resolve(key)
		if !ok || v == nil {
			return
		}
		s, ok := toDate(v)
		if !ok {
			ignored = append(ignored, key)
			return
		}
		*dst = &s
	}

	setString("billType", &p.BillType)
	setString("vehicleType", &p.VehicleType)
	setString("bikeModel", &p.BikeModel)
	setString("customerName", &p.CustomerName)
	setString("customerNIC", &p.CustomerNIC)
	setString("customerAddress", &p.CustomerAddress)
	setString("motorNumber", &p.MotorNumber)
	setString("chassisNumber", &p.ChassisNumber)

	setNumber("bikePrice", &p.BikePrice)
	setNumber("downPayment", &p.DownPayment)
	setNumber("balanceAmount", &p.BalanceAmount)
	setNumber("totalAmount", &p.TotalAmount)

	setDate("billDate", &p.BillDate)
	setDate("estimatedDeliveryDate", &p.EstimatedDeliveryDate)

	if v, ok := resolve("inventoryItemId"); ok && v != nil {
		if n, ok := toNumber(v); ok && n == math.Trunc(n) {
			id := int(n)
			p.InventoryItemID = &id
		} else {
			ignored = append(ignored, "inventoryItemId")
		}
	}

	// Record unrecognized keys so the caller can log what the allow-list ate.
	for key := range raw {
		if canonicalKeys[key] {
			continue
		}
		if _, ok := alternateKeys[key]; ok {
			continue
		}
		ignored = append(ignored, key)
	}

	return p, ignored
}

func toNumber(v any) (float64, bool) {
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case float32:
		n = float64(t)
	case int:
		n = float64(t)
	case int64:
		n = float64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func toDate(v any) (string, bool) {
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.RFC3339), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return "", false
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed.Format(time.RFC3339), true
			}
		}
		return "", false
	default:
		return "", false
	}
}
