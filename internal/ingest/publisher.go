package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/crisiswatch/crisis_alert_system/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// Publisher - интерфейс публикации постов-кандидатов в очередь инжеста
type Publisher interface {
	Publish(ctx context.Context, post models.CandidatePost) error
}

// RedisPublisher - реализация Publisher, использующая список Redis как очередь
type RedisPublisher struct {
	redisClient *redis.Client
	queueKey    string
}

func NewRedisPublisher(client *redis.Client, queueKey string) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
		queueKey:    queueKey,
	}
}

// Publish добавляет пост-кандидат в очередь. Пустые id и время заполняются здесь,
// чтобы источникам не нужно было об этом заботиться.
func (p *RedisPublisher) Publish(ctx context.Context, post models.CandidatePost) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	if post.PostedAt.IsZero() {
		post.PostedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("failed to marshal candidate post: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает BRPOP с правой
	if err := p.redisClient.LPush(ctx, p.queueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish candidate post to Redis: %w", err)
	}
	return nil
}
