package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/crisiswatch/crisis_alert_system/internal/models"
	"github.com/crisiswatch/crisis_alert_system/internal/service"
)

const alertCacheTTL = 5 * time.Minute

type AlertRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewAlertRepository(db *pgxpool.Pool, redisClient *redis.Client) service.AlertRepository {
	return &AlertRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новый алерт в статусе pending, id и время присваивает бд
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (text, lat, lon, status)
		VALUES ($1, $2, $3, $4) RETURNING id, time;
	`
	alert.Status = models.AlertStatusPending
	err := r.db.QueryRow(ctx, query,
		alert.Text,
		alert.Latitude,
		alert.Longitude,
		alert.Status,
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetByID возвращает алерт по его id
func (r *AlertRepository) GetByID(ctx context.Context, id int64) (*models.Alert, error) {
	alert := &models.Alert{}
	query := `
		SELECT id, text, lat, lon, status, time
		FROM alerts
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&alert.ID,
		&alert.Text,
		&alert.Latitude,
		&alert.Longitude,
		&alert.Status,
		&alert.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrAlertNotFound
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return alert, nil
}

// UpdateStatus устанавливает новый статус алерта.
// Если алерта с таким id нет, возвращает ErrAlertNotFound (а не молчаливый no-op).
func (r *AlertRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `
		UPDATE alerts SET status = $1 WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update alert status: %w", err)
	}

	// Проверка, была ли обновлена хоть одна строка
	if cmdTag.RowsAffected() == 0 {
		return models.ErrAlertNotFound
	}
	return nil
}

// ListPending возвращает алерты в статусе pending, новые первыми.
// При равных временах порядок детерминирован за счёт id DESC.
func (r *AlertRepository) ListPending(ctx context.Context) ([]*models.Alert, error) {
	query := `
		SELECT id, text, lat, lon, status, time
		FROM alerts
		WHERE status = $1
		ORDER BY time DESC, id DESC;
	`
	rows, err := r.db.Query(ctx, query, models.AlertStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert := &models.Alert{}
		err := rows.Scan(
			&alert.ID,
			&alert.Text,
			&alert.Latitude,
			&alert.Longitude,
			&alert.Status,
			&alert.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return alerts, nil
}

// GetAlertFromCache пытается получить алерт из Redis
func (r *AlertRepository) GetAlertFromCache(ctx context.Context, id int64) (*models.Alert, error) {
	key := fmt.Sprintf("alert:%d", id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get alert from cache: %w", err)
	}

	alert := &models.Alert{}
	if err := json.Unmarshal(val, alert); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alert from cache: %w", err)
	}
	return alert, nil
}

// SetAlertCache сохраняет алерт в Redis
func (r *AlertRepository) SetAlertCache(ctx context.Context, alert *models.Alert) error {
	key := fmt.Sprintf("alert:%d", alert.ID)
	val, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, alertCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set alert in cache: %w", err)
	}
	return nil
}

// InvalidateAlertCache удаляет алерт из Redis кэша
func (r *AlertRepository) InvalidateAlertCache(ctx context.Context, id int64) error {
	key := fmt.Sprintf("alert:%d", id)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate alert cache: %w", err)
	}
	return nil
}
