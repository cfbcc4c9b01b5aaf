package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrInventoryUnavailable = errors.New("inventory item is not available")

type BillRepository struct {
	DB *pgxpool.Pool
}

func NewBillRepository(db *pgxpool.Pool) *BillRepository {
	return &BillRepository{DB: db}
}

const billColumns = `id, bill_number, bill_type, vehicle_type, bike_model, bike_price, rmv_charge,
	down_payment, balance_amount, total_amount,
	customer_name, customer_nic, customer_address, motor_number, chassis_number,
	bill_date, estimated_delivery_date,
	is_ebicycle, is_tricycle, is_first_tricycle_sale,
	status, owner_id, inventory_item_id, created_at, updated_at`

func scanBill(row pgx.Row) (*models.Bill, error) {
	var b models.Bill
	err := row.Scan(&b.ID, &b.BillNumber, &b.BillType, &b.VehicleType, &b.BikeModel,
		&b.BikePrice, &b.RMVCharge, &b.DownPayment, &b.BalanceAmount, &b.TotalAmount,
		&b.CustomerName, &b.CustomerNIC, &b.CustomerAddress, &b.MotorNumber, &b.ChassisNumber,
		&b.BillDate, &b.EstimatedDeliveryDate,
		&b.IsEbicycle, &b.IsTricycle, &b.IsFirstTricycleSale,
		&b.Status, &b.OwnerID, &b.InventoryItemID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GenerateBillNumber generates a unique bill number from the database sequence
func (r *BillRepository) GenerateBillNumber(ctx context.Context) (string, error) {
	var nextNum int
	err := r.DB.QueryRow(ctx, "SELECT nextval('bill_number_sequence')").Scan(&nextNum)
	if err != nil {
		return "", fmt.Errorf("failed to get next bill number: %w", err)
	}
	return fmt.Sprintf("TMR-%06d", nextNum), nil
}

// Create inserts a bill, claiming the linked inventory item and the
// first-tricycle-sale flag in the same transaction.
func (r *BillRepository) Create(ctx context.Context, bill *models.Bill) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if bill.BillNumber == "" {
		billNumber, err := r.GenerateBillNumber(ctx)
		if err != nil {
			return err
		}
		bill.BillNumber = billNumber
	}

	// Lock and claim the inventory item if one is linked
	if bill.InventoryItemID != nil {
		var status string
		err = tx.QueryRow(ctx,
			`SELECT status FROM inventory_items WHERE id=$1 AND deleted_at IS NULL FOR UPDATE`,
			*bill.InventoryItemID).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrInventoryUnavailable
			}
			return err
		}
		if status != models.InventoryAvailable && status != models.InventoryReserved {
			return ErrInventoryUnavailable
		}
		_, err = tx.Exec(ctx,
			`UPDATE inventory_items SET status=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
			models.InventorySold, *bill.InventoryItemID)
		if err != nil {
			return err
		}
	}

	// Atomically claim the first tricycle sale: only the transaction that
	// moves the counter from 0 to 1 keeps the flag
	if bill.IsTricycle {
		var counterValue int
		err = tx.QueryRow(ctx,
			`UPDATE system_counters SET counter_value = counter_value + 1, updated_at=CURRENT_TIMESTAMP
			 WHERE counter_key='tricycle_bills' RETURNING counter_value`).Scan(&counterValue)
		if err != nil {
			return err
		}
		bill.IsFirstTricycleSale = counterValue == 1
	} else {
		bill.IsFirstTricycleSale = false
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO bills(bill_number, bill_type, vehicle_type, bike_model, bike_price, rmv_charge,
		 down_payment, balance_amount, total_amount,
		 customer_name, customer_nic, customer_address, motor_number, chassis_number,
		 bill_date, estimated_delivery_date,
		 is_ebicycle, is_tricycle, is_first_tricycle_sale,
		 status, owner_id, inventory_item_id)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		 RETURNING id, created_at, updated_at`,
		bill.BillNumber, bill.BillType, bill.VehicleType, bill.BikeModel, bill.BikePrice, bill.RMVCharge,
		bill.DownPayment, bill.BalanceAmount, bill.TotalAmount,
		bill.CustomerName, bill.CustomerNIC, bill.CustomerAddress, bill.MotorNumber, bill.ChassisNumber,
		bill.BillDate, bill.EstimatedDeliveryDate,
		bill.IsEbicycle, bill.IsTricycle, bill.IsFirstTricycleSale,
		bill.Status, bill.OwnerID, bill.InventoryItemID,
	).Scan(&bill.ID, &bill.CreatedAt, &bill.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Get retrieves a bill by ID (excluding soft-deleted)
func (r *BillRepository) Get(ctx context.Context, id int) (*models.Bill, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+billColumns+` FROM bills WHERE id=$1 AND deleted_at IS NULL`, id)
	return scanBill(row)
}

// GetByNumber retrieves a bill by its bill number
func (r *BillRepository) GetByNumber(ctx context.Context, billNumber string) (*models.Bill, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+billColumns+` FROM bills WHERE bill_number=$1 AND deleted_at IS NULL`, billNumber)
	return scanBill(row)
}

// ListFilter narrows the bill listing
type ListFilter struct {
	OwnerID *int   // nil means all owners (admin)
	Status  string // empty means any
	Search  string // matches customer name, NIC or bill number
	Limit   int
	Offset  int
}

// List returns bills newest first, optionally filtered
func (r *BillRepository) List(ctx context.Context, f ListFilter) ([]*models.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE deleted_at IS NULL`
	args := []interface{}{}
	idx := 1

	if f.OwnerID != nil {
		query += fmt.Sprintf(" AND owner_id=$%d", idx)
		args = append(args, *f.OwnerID)
		idx++
	}
	if f.Status != "" {
		query += fmt.Sprintf(" AND status=$%d", idx)
		args = append(args, f.Status)
		idx++
	}
	if f.Search != "" {
		query += fmt.Sprintf(" AND (customer_name ILIKE $%d OR customer_nic ILIKE $%d OR bill_number ILIKE $%d OR motor_number ILIKE $%d OR chassis_number ILIKE $%d)", idx, idx, idx, idx, idx)
		args = append(args, "%"+f.Search+"%")
		idx++
	}

	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", idx)
		args = append(args, f.Limit)
		idx++
	}
	if f.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", idx)
		args = append(args, f.Offset)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []*models.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}

// Update rewrites the mutable bill fields
func (r *BillRepository) Update(ctx context.Context, bill *models.Bill) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE bills SET bill_type=$1, vehicle_type=$2, bike_model=$3, bike_price=$4, rmv_charge=$5,
		 down_payment=$6, balance_amount=$7, total_amount=$8,
		 customer_name=$9, customer_nic=$10, customer_address=$11, motor_number=$12, chassis_number=$13,
		 bill_date=$14, estimated_delivery_date=$15,
		 is_ebicycle=$16, is_tricycle=$17, is_first_tricycle_sale=$18,
		 status=$19, updated_at=CURRENT_TIMESTAMP
		 WHERE id=$20 AND deleted_at IS NULL`,
		bill.BillType, bill.VehicleType, bill.BikeModel, bill.BikePrice, bill.RMVCharge,
		bill.DownPayment, bill.BalanceAmount, bill.TotalAmount,
		bill.CustomerName, bill.CustomerNIC, bill.CustomerAddress, bill.MotorNumber, bill.ChassisNumber,
		bill.BillDate, bill.EstimatedDeliveryDate,
		bill.IsEbicycle, bill.IsTricycle, bill.IsFirstTricycleSale,
		bill.Status, bill.ID)
	return err
}

// UpdateStatus changes the bill status and keeps the linked inventory
// item in sync: completed or pending keeps it sold, cancelled releases it.
func (r *BillRepository) UpdateStatus(ctx context.Context, billID int, status string) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var inventoryItemID *int
	err = tx.QueryRow(ctx,
		`UPDATE bills SET status=$1, updated_at=CURRENT_TIMESTAMP
		 WHERE id=$2 AND deleted_at IS NULL RETURNING inventory_item_id`,
		status, billID).Scan(&inventoryItemID)
	if err != nil {
		return err
	}

	if inventoryItemID != nil {
		invStatus := models.InventorySold
		if status == models.BillStatusCancelled {
			invStatus = models.InventoryAvailable
		}
		_, err = tx.Exec(ctx,
			`UPDATE inventory_items SET status=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
			invStatus, *inventoryItemID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// SoftDelete marks a bill deleted and releases its inventory item
func (r *BillRepository) SoftDelete(ctx context.Context, billID int) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var inventoryItemID *int
	err = tx.QueryRow(ctx,
		`UPDATE bills SET deleted_at=CURRENT_TIMESTAMP, updated_at=CURRENT_TIMESTAMP
		 WHERE id=$1 AND deleted_at IS NULL RETURNING inventory_item_id`,
		billID).Scan(&inventoryItemID)
	if err != nil {
		return err
	}

	if inventoryItemID != nil {
		_, err = tx.Exec(ctx,
			`UPDATE inventory_items SET status=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
			models.InventoryAvailable, *inventoryItemID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// CountTricycleBills returns how many non-deleted tricycle bills exist.
// Satisfies billing.TricycleCounter for the pricing pipeline.
func (r *BillRepository) CountTricycleBills(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM bills WHERE is_tricycle=true AND deleted_at IS NULL`).Scan(&count)
	return count, err
}
