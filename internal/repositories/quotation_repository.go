package repositories

import (
	"context"
	"fmt"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type QuotationRepository struct {
	DB *pgxpool.Pool
}

func NewQuotationRepository(db *pgxpool.Pool) *QuotationRepository {
	return &QuotationRepository{DB: db}
}

const quotationColumns = `id, quotation_number, customer_name, customer_nic, customer_address,
	bike_model, vehicle_type, bike_price, total_amount, valid_until, status, owner_id, bill_id,
	created_at, updated_at`

func scanQuotation(row pgx.Row) (*models.Quotation, error) {
	var q models.Quotation
	err := row.Scan(&q.ID, &q.QuotationNumber, &q.CustomerName, &q.CustomerNIC, &q.CustomerAddress,
		&q.BikeModel, &q.VehicleType, &q.BikePrice, &q.TotalAmount, &q.ValidUntil, &q.Status,
		&q.OwnerID, &q.BillID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// GenerateQuotationNumber generates a unique quotation number from the database sequence
func (r *QuotationRepository) GenerateQuotationNumber(ctx context.Context) (string, error) {
	var nextNum int
	err := r.DB.QueryRow(ctx, "SELECT nextval('quotation_number_sequence')").Scan(&nextNum)
	if err != nil {
		return "", fmt.Errorf("failed to get next quotation number: %w", err)
	}
	return fmt.Sprintf("QUO-%06d", nextNum), nil
}

func (r *QuotationRepository) Create(ctx context.Context, q *models.Quotation) error {
	if q.QuotationNumber == "" {
		number, err := r.GenerateQuotationNumber(ctx)
		if err != nil {
			return err
		}
		q.QuotationNumber = number
	}
	if q.Status == "" {
		q.Status = models.QuotationDraft
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO quotations(quotation_number, customer_name, customer_nic, customer_address,
		 bike_model, vehicle_type, bike_price, total_amount, valid_until, status, owner_id)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at, updated_at`,
		q.QuotationNumber, q.CustomerName, q.CustomerNIC, q.CustomerAddress,
		q.BikeModel, q.VehicleType, q.BikePrice, q.TotalAmount, q.ValidUntil, q.Status, q.OwnerID,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
}

func (r *QuotationRepository) Get(ctx context.Context, id int) (*models.Quotation, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+quotationColumns+` FROM quotations WHERE id=$1`, id)
	return scanQuotation(row)
}

// List returns quotations newest first, optionally scoped to an owner
func (r *QuotationRepository) List(ctx context.Context, ownerID *int, status string) ([]*models.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if ownerID != nil {
		query += fmt.Sprintf(" AND owner_id=$%d", idx)
		args = append(args, *ownerID)
		idx++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status=$%d", idx)
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotations []*models.Quotation
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, err
		}
		quotations = append(quotations, q)
	}
	return quotations, rows.Err()
}

// UpdateStatus transitions a quotation between draft, sent and accepted
func (r *QuotationRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE quotations SET status=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		status, id)
	return err
}

// MarkConverted links the quotation to the bill created from it
func (r *QuotationRepository) MarkConverted(ctx context.Context, id, billID int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE quotations SET status=$1, bill_id=$2, updated_at=CURRENT_TIMESTAMP WHERE id=$3`,
		models.QuotationConverted, billID, id)
	return err
}
