package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crisiswatch/crisis_alert_system/internal/models"
	"github.com/crisiswatch/crisis_alert_system/internal/service"
)

type SubscriptionRepository struct {
	db *pgxpool.Pool
}

func NewSubscriptionRepository(db *pgxpool.Pool) service.SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create регистрирует нового подписчика.
// Уникальность телефона обеспечивается UNIQUE-констрейнтом в бд, а не проверкой
// перед вставкой: два одновременных запроса с одним номером не пройдут оба.
func (r *SubscriptionRepository) Create(ctx context.Context, sub *models.Subscription) error {
	query := `
		INSERT INTO subscriptions (phone, lat, lon, radius_km)
		VALUES ($1, $2, $3, $4) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		sub.Phone,
		sub.Latitude,
		sub.Longitude,
		sub.RadiusKm,
	).Scan(&sub.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return models.ErrDuplicateSubscriber
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

// ListAll возвращает всех подписчиков. Порядок для вызывающего кода не значим,
// матчинг обходит список как множество.
func (r *SubscriptionRepository) ListAll(ctx context.Context) ([]*models.Subscription, error) {
	query := `
		SELECT id, phone, lat, lon, radius_km
		FROM subscriptions;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	subs := make([]*models.Subscription, 0)
	for rows.Next() {
		sub := &models.Subscription{}
		err := rows.Scan(
			&sub.ID,
			&sub.Phone,
			&sub.Latitude,
			&sub.Longitude,
			&sub.RadiusKm,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription row: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return subs, nil
}
