package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/crisiswatch/crisis_alert_system/internal/classifier"
	"github.com/crisiswatch/crisis_alert_system/internal/config"
	"github.com/crisiswatch/crisis_alert_system/internal/models"
	"github.com/crisiswatch/crisis_alert_system/internal/observability"
	"github.com/crisiswatch/crisis_alert_system/internal/service"
)

// Worker - фоновый потребитель очереди постов-кандидатов.
// Прогоняет каждый пост через предфильтр и классификатор и создает
// pending-алерт для постов, помеченных как бедствие.
type Worker struct {
	redisClient *redis.Client
	alerts      service.AlertService
	classifier  classifier.Classifier
	logger      *logrus.Logger
	cfg         *config.Config
	metrics     *observability.Metrics
}

func NewWorker(redisClient *redis.Client, alerts service.AlertService, clf classifier.Classifier, logger *logrus.Logger, cfg *config.Config, metrics *observability.Metrics) *Worker {
	return &Worker{
		redisClient: redisClient,
		alerts:      alerts,
		classifier:  clf,
		logger:      logger,
		cfg:         cfg,
		metrics:     metrics,
	}
}

// Start запускает горутину обработки очереди. Остановка - через отмену ctx;
// BRPOP выполняется с конечным таймаутом, поэтому сигнал остановки замечается
// не позже чем через IngestPollInterval.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting ingest worker...")
	w.metrics.IngestRunning.Set(1)
	go func() {
		defer w.metrics.IngestRunning.Set(0)
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping ingest worker.")
				return
			default:
				result, err := w.redisClient.BRPop(ctx, w.cfg.IngestPollInterval, w.cfg.IngestQueueKey).Result()
				if err != nil {
					if errors.Is(err, redis.Nil) {
						continue // таймаут опроса, очередь пуста
					}
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop candidate post from Redis")
					time.Sleep(w.cfg.IngestPollInterval) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				var post models.CandidatePost
				if err := json.Unmarshal([]byte(result[1]), &post); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal candidate post from Redis")
					continue
				}

				w.processPost(ctx, post)
			}
		}
	}()
}

func (w *Worker) processPost(ctx context.Context, post models.CandidatePost) {
	log := w.logger.WithFields(logrus.Fields{
		"worker":  "ingest",
		"post_id": post.ID,
		"source":  post.Source,
	})
	log.Debug("Processing candidate post...")
	w.metrics.PostsIngested.Inc()

	// Грубый предфильтр по ключевым словам, чтобы не дергать модель на каждый пост
	if !ContainsCrisisKeyword(post.Text) {
		log.Debug("Post has no crisis keywords, skipping")
		return
	}

	isDisaster, err := w.classifier.Predict(ctx, post.Text)
	if err != nil {
		log.WithError(err).Error("Classifier call failed, post skipped")
		return
	}

	if !isDisaster {
		w.metrics.PostsClassified.WithLabelValues(classifier.LabelNotDisaster).Inc()
		log.Debug("Post classified as not a disaster")
		return
	}
	w.metrics.PostsClassified.WithLabelValues(classifier.LabelDisaster).Inc()

	alert := &models.Alert{
		Text:      post.Text,
		Latitude:  post.Latitude,
		Longitude: post.Longitude,
	}
	if err := w.alerts.CreateAlert(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert from candidate post")
		return
	}

	log.WithField("alert_id", alert.ID).Info("Potential crisis detected, pending alert created")
}
