package repositories

import (
	"context"
	"fmt"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InventoryRepository struct {
	DB *pgxpool.Pool
}

func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

const inventoryColumns = `id, bike_model, vehicle_type, motor_number, chassis_number, price, status, created_at, updated_at`

func scanInventoryItem(row pgx.Row) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := row.Scan(&item.ID, &item.BikeModel, &item.VehicleType, &item.MotorNumber,
		&item.ChassisNumber, &item.Price, &item.Status, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	if item.Status == "" {
		item.Status = models.InventoryAvailable
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO inventory_items(bike_model, vehicle_type, motor_number, chassis_number, price, status)
		 VALUES($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		item.BikeModel, item.VehicleType, item.MotorNumber, item.ChassisNumber, item.Price, item.Status,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *InventoryRepository) Get(ctx context.Context, id int) (*models.InventoryItem, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+inventoryColumns+` FROM inventory_items WHERE id=$1 AND deleted_at IS NULL`, id)
	return scanInventoryItem(row)
}

// List returns inventory items newest first, optionally filtered by status
// and a free-text search over model, motor and chassis numbers
func (r *InventoryRepository) List(ctx context.Context, status, search string) ([]*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE deleted_at IS NULL`
	args := []interface{}{}
	idx := 1

	if status != "" {
		query += fmt.Sprintf(" AND status=$%d", idx)
		args = append(args, status)
		idx++
	}
	if search != "" {
		query += fmt.Sprintf(" AND (bike_model ILIKE $%d OR motor_number ILIKE $%d OR chassis_number ILIKE $%d)", idx, idx, idx)
		args = append(args, "%"+search+"%")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.InventoryItem
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *InventoryRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE inventory_items SET bike_model=$1, vehicle_type=$2, motor_number=$3, chassis_number=$4,
		 price=$5, status=$6, updated_at=CURRENT_TIMESTAMP
		 WHERE id=$7 AND deleted_at IS NULL`,
		item.BikeModel, item.VehicleType, item.MotorNumber, item.ChassisNumber,
		item.Price, item.Status, item.ID)
	return err
}

// SoftDelete marks an item deleted; sold items stay referenced by bills
func (r *InventoryRepository) SoftDelete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE inventory_items SET deleted_at=CURRENT_TIMESTAMP, updated_at=CURRENT_TIMESTAMP
		 WHERE id=$1 AND deleted_at IS NULL`, id)
	return err
}
