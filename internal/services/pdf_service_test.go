package services

import (
	"context"
	"testing"
	"time"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBranding struct {
	profile models.BrandingProfile
}

func (s *stubBranding) GetProfile(ctx context.Context) (*models.BrandingProfile, error) {
	return &s.profile, nil
}

func testBill() *models.Bill {
	return &models.Bill{
		ID:           1,
		BillNumber:   "TMR-000042",
		BillType:     "cash",
		VehicleType:  "E-MOTORCYCLE",
		BikeModel:    "TMR-G18",
		BikePrice:    300000,
		RMVCharge:    13000,
		TotalAmount:  313000,
		CustomerName: "Kamal Perera",
		CustomerNIC:  "902541234V",
		MotorNumber:  "MT-9921",
		Status:       "completed",
		BillDate:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestGenerateBillPDF(t *testing.T) {
	svc := NewPDFService(&stubBranding{profile: models.BrandingProfile{
		DealerName: "TMR Trading Lanka (PVT) LTD",
		Address:    "No. 12, Main Street, Embilipitiya",
		FooterText: "Thank you for your business",
	}})

	data, err := svc.GenerateBillPDF(context.Background(), testBill())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateBillPDFAdvance(t *testing.T) {
	svc := NewPDFService(&stubBranding{})
	bill := testBill()
	bill.BillType = "advance"
	bill.DownPayment = 100000
	bill.BalanceAmount = 200000
	bill.TotalAmount = 300000
	bill.Status = "pending"

	data, err := svc.GenerateBillPDF(context.Background(), bill)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateQuotationPDF(t *testing.T) {
	svc := NewPDFService(&stubBranding{})
	validUntil := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	q := &models.Quotation{
		ID:              3,
		QuotationNumber: "QUO-000007",
		CustomerName:    "Nimal Silva",
		BikeModel:       "TMR-N7",
		VehicleType:     "E-MOTORBICYCLE",
		BikePrice:       250000,
		TotalAmount:     250000,
		ValidUntil:      &validUntil,
		Status:          "draft",
	}

	data, err := svc.GenerateQuotationPDF(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
