package repositories

import (
	"context"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingRepository struct {
	DB *pgxpool.Pool
}

func NewSettingRepository(db *pgxpool.Pool) *SettingRepository {
	return &SettingRepository{DB: db}
}

func (r *SettingRepository) Get(ctx context.Context, key string) (*models.BrandingSetting, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, setting_key, setting_value, COALESCE(description, ''), updated_at, COALESCE(updated_by_user_id, 0)
		 FROM branding_settings WHERE setting_key=$1`, key)

	var s models.BrandingSetting
	err := row.Scan(&s.ID, &s.SettingKey, &s.SettingValue, &s.Description, &s.UpdatedAt, &s.UpdatedByUserID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns all branding settings
func (r *SettingRepository) List(ctx context.Context) ([]*models.BrandingSetting, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, setting_key, setting_value, COALESCE(description, ''), updated_at, COALESCE(updated_by_user_id, 0)
		 FROM branding_settings ORDER BY setting_key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []*models.BrandingSetting
	for rows.Next() {
		var s models.BrandingSetting
		err := rows.Scan(&s.ID, &s.SettingKey, &s.SettingValue, &s.Description, &s.UpdatedAt, &s.UpdatedByUserID)
		if err != nil {
			return nil, err
		}
		settings = append(settings, &s)
	}
	return settings, rows.Err()
}

// Upsert writes a setting value, creating the key if it does not exist
func (r *SettingRepository) Upsert(ctx context.Context, key, value string, updatedBy int) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO branding_settings(setting_key, setting_value, updated_by_user_id)
		 VALUES($1, $2, $3)
		 ON CONFLICT (setting_key)
		 DO UPDATE SET setting_value=$2, updated_by_user_id=$3, updated_at=CURRENT_TIMESTAMP`,
		key, value, updatedBy)
	return err
}
