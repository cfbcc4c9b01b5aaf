package repositories

import (
	"context"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type LoginLogRepository struct {
	DB *pgxpool.Pool
}

func NewLoginLogRepository(db *pgxpool.Pool) *LoginLogRepository {
	return &LoginLogRepository{DB: db}
}

func (r *LoginLogRepository) Create(ctx context.Context, l *models.LoginLog) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO login_logs(user_id, ip_address, user_agent)
		 VALUES($1, $2, $3)
		 RETURNING id, created_at`,
		l.UserID, l.IPAddress, l.UserAgent,
	).Scan(&l.ID, &l.CreatedAt)
}

// List returns recent logins with the user's email joined in
func (r *LoginLogRepository) List(ctx context.Context, limit int) ([]*models.LoginLog, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.DB.Query(ctx,
		`SELECT l.id, l.user_id, u.email, l.ip_address, l.user_agent, l.created_at
		 FROM login_logs l
		 JOIN users u ON u.id = l.user_id
		 ORDER BY l.created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.LoginLog
	for rows.Next() {
		var l models.LoginLog
		err := rows.Scan(&l.ID, &l.UserID, &l.UserEmail, &l.IPAddress, &l.UserAgent, &l.CreatedAt)
		if err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}
