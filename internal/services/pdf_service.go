package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/metrics"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/models"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// BrandingProvider supplies the dealer identity printed on documents
type BrandingProvider interface {
	GetProfile(ctx context.Context) (*models.BrandingProfile, error)
}

// PDFService renders bills and quotations as printable A4 documents
type PDFService struct {
	branding BrandingProvider
}

func NewPDFService(branding BrandingProvider) *PDFService {
	return &PDFService{branding: branding}
}

func (s *PDFService) header(ctx context.Context, pdf *gofpdf.Fpdf, title string) {
	profile, err := s.branding.GetProfile(ctx)
	if err != nil || profile.DealerName == "" {
		profile = &models.BrandingProfile{DealerName: "TMR Trading Lanka (PVT) LTD"}
	}

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, profile.DealerName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if profile.Address != "" {
		pdf.CellFormat(190, 5, profile.Address, "", 1, "C", false, 0, "")
	}
	contact := profile.Phone
	if profile.Email != "" {
		if contact != "" {
			contact += " | "
		}
		contact += profile.Email
	}
	if contact != "" {
		pdf.CellFormat(190, 5, contact, "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(190, 8, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(190, 5, fmt.Sprintf("Generated: %s", timeutil.Now().Format(timeutil.DisplayLayout+" 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

func (s *PDFService) footer(ctx context.Context, pdf *gofpdf.Fpdf) {
	profile, err := s.branding.GetProfile(ctx)
	if err != nil || profile.FooterText == "" {
		return
	}
	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(190, 5, profile.FooterText, "", 1, "C", false, 0, "")
}

// GenerateBillPDF renders one bill
func (s *PDFService) GenerateBillPDF(ctx context.Context, bill *models.Bill) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	s.header(ctx, pdf, fmt.Sprintf("BILL %s", bill.BillNumber))

	// Bill meta
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(190, 8, "Bill Details", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 7, fmt.Sprintf("Bill Type: %s", strings.ToUpper(bill.BillType)), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Date: %s", timeutil.ToLocal(bill.BillDate).Format(timeutil.DisplayLayout)), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Status: %s", strings.ToUpper(bill.Status)), "LB", 0, "L", false, 0, "")
	if bill.EstimatedDeliveryDate != nil {
		pdf.CellFormat(95, 7, fmt.Sprintf("Est. Delivery: %s", timeutil.ToLocal(*bill.EstimatedDeliveryDate).Format(timeutil.DisplayLayout)), "RB", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(95, 7, "", "RB", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Customer
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(190, 8, "Customer", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", bill.CustomerName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("NIC: %s", bill.CustomerNIC), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(190, 7, fmt.Sprintf("Address: %s", bill.CustomerAddress), "LRB", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Vehicle
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(190, 8, "Vehicle", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 7, fmt.Sprintf("Model: %s", bill.BikeModel), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Type: %s", bill.VehicleType), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Motor No: %s", bill.MotorNumber), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Chassis No: %s", bill.ChassisNumber), "RB", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Amounts
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(190, 8, "Payment", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)

	row := func(label string, amount float64) {
		pdf.CellFormat(120, 7, label, "LB", 0, "L", false, 0, "")
		pdf.CellFormat(70, 7, fmt.Sprintf("Rs. %.2f", amount), "RB", 1, "R", false, 0, "")
	}

	row("Bike Price", bill.BikePrice)
	if bill.RMVCharge > 0 {
		label := "RMV Charge"
		if bill.BillType == "leasing" {
			label = "RMV Charge (CPZ)"
		}
		row(label, bill.RMVCharge)
	}
	switch bill.BillType {
	case "leasing":
		row("Down Payment", bill.DownPayment)
	case "advance":
		row("Advance Paid", bill.DownPayment)
		row("Balance Due", bill.BalanceAmount)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(220, 220, 220)
	pdf.CellFormat(120, 9, "TOTAL", "1", 0, "L", true, 0, "")
	pdf.CellFormat(70, 9, fmt.Sprintf("Rs. %.2f", bill.TotalAmount), "1", 1, "R", true, 0, "")

	s.footer(ctx, pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render bill pdf: %w", err)
	}
	metrics.PDFGeneratedTotal.Inc()
	return buf.Bytes(), nil
}

// GenerateQuotationPDF renders one quotation
func (s *PDFService) GenerateQuotationPDF(ctx context.Context, q *models.Quotation) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	s.header(ctx, pdf, fmt.Sprintf("QUOTATION %s", q.QuotationNumber))

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(190, 8, "Customer", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", q.CustomerName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("NIC: %s", q.CustomerNIC), "RB", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(190, 8, "Vehicle", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 7, fmt.Sprintf("Model: %s", q.BikeModel), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Type: %s", q.VehicleType), "RB", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(220, 220, 220)
	pdf.CellFormat(120, 9, "QUOTED TOTAL", "1", 0, "L", true, 0, "")
	pdf.CellFormat(70, 9, fmt.Sprintf("Rs. %.2f", q.TotalAmount), "1", 1, "R", true, 0, "")

	if q.ValidUntil != nil {
		pdf.Ln(3)
		pdf.SetFont("Arial", "I", 9)
		pdf.CellFormat(190, 5, fmt.Sprintf("Valid until %s", timeutil.ToLocal(*q.ValidUntil).Format(timeutil.DisplayLayout)), "", 1, "L", false, 0, "")
	}

	s.footer(ctx, pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quotation pdf: %w", err)
	}
	metrics.PDFGeneratedTotal.Inc()
	return buf.Bytes(), nil
}
