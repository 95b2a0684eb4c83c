package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/crisiswatch/crisis_alert_system/internal/models"
	"github.com/crisiswatch/crisis_alert_system/internal/observability"
)

//go:generate mockgen -source=alert.go -destination=mocks/mock_alert.go -package=mocks

// AlertRepository определяет контракт для работы с бд алертов
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	GetByID(ctx context.Context, id int64) (*models.Alert, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	ListPending(ctx context.Context) ([]*models.Alert, error)
	GetAlertFromCache(ctx context.Context, id int64) (*models.Alert, error)
	SetAlertCache(ctx context.Context, alert *models.Alert) error
	InvalidateAlertCache(ctx context.Context, id int64) error
}

// Dispatcher определяет контракт рассылки уведомлений по подтвержденному алерту
type Dispatcher interface {
	Dispatch(ctx context.Context, alert *models.Alert) ([]models.NotificationResult, error)
}

// AlertService определяет контракт бизнес-логики жизненного цикла алертов
type AlertService interface {
	CreateAlert(ctx context.Context, alert *models.Alert) error
	GetAlert(ctx context.Context, id int64) (*models.Alert, error)
	ListPending(ctx context.Context) ([]*models.Alert, error)
	Confirm(ctx context.Context, id int64, finalText string) ([]models.NotificationResult, error)
	Dismiss(ctx context.Context, id int64) error
}

type alertService struct {
	repo       AlertRepository
	dispatcher Dispatcher
	logger     *logrus.Logger
	metrics    *observability.Metrics
}

func NewAlertService(repo AlertRepository, dispatcher Dispatcher, logger *logrus.Logger, metrics *observability.Metrics) AlertService {
	return &alertService{
		repo:       repo,
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// CreateAlert создает алерт-кандидат в статусе pending
func (s *alertService) CreateAlert(ctx context.Context, alert *models.Alert) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "CreateAlert",
	})
	log.Info("Attempting to create a new alert")

	if err := s.repo.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return fmt.Errorf("service: could not create alert: %w", err)
	}

	s.metrics.AlertsCreated.Inc()
	log.WithField("alert_id", alert.ID).Info("Alert created successfully")
	return nil
}

// GetAlert получает алерт по id, сначала из кэша, затем из бд
func (s *alertService) GetAlert(ctx context.Context, id int64) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "GetAlert",
		"alert_id": id,
	})

	cached, err := s.repo.GetAlertFromCache(ctx, id)
	if err != nil {
		// Кэш недоступен - не причина не отдать алерт из бд
		log.WithError(err).Warn("Failed to read alert from cache")
	}
	if cached != nil {
		return cached, nil
	}

	alert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrAlertNotFound) {
			return nil, err
		}
		log.WithError(err).Error("Failed to get alert from repository")
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}

	if err := s.repo.SetAlertCache(ctx, alert); err != nil {
		log.WithError(err).Warn("Failed to cache alert")
	}
	return alert, nil
}

// ListPending возвращает алерты, ожидающие решения оператора, новые первыми
func (s *alertService) ListPending(ctx context.Context) ([]*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "ListPending",
	})

	alerts, err := s.repo.ListPending(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list pending alerts from repository")
		return nil, fmt.Errorf("service: could not list pending alerts: %w", err)
	}

	log.WithField("count", len(alerts)).Info("Pending alerts listed successfully")
	return alerts, nil
}

// Confirm переводит алерт pending -> confirmed и запускает рассылку ровно один раз.
// В рассылку уходит копия алерта с текстом finalText (возможно, отредактированным
// оператором); запись в бд сохраняет исходный текст как аудиторский след.
func (s *alertService) Confirm(ctx context.Context, id int64, finalText string) ([]models.NotificationResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "Confirm",
		"alert_id": id,
	})
	log.Info("Attempting to confirm alert")

	alert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrAlertNotFound) {
			log.Warn("Attempted to confirm a non-existent alert")
			return nil, err
		}
		log.WithError(err).Error("Failed to get alert from repository")
		return nil, fmt.Errorf("service: could not get alert for confirm: %w", err)
	}

	// Подтверждение допустимо только из pending: повторный confirm не должен
	// привести к повторной рассылке
	if alert.Status != models.AlertStatusPending {
		log.WithField("status", alert.Status).Warn("Attempted to confirm a non-pending alert")
		return nil, models.ErrAlertNotPending
	}

	if err := s.repo.UpdateStatus(ctx, id, models.AlertStatusConfirmed); err != nil {
		log.WithError(err).Error("Failed to update alert status")
		return nil, fmt.Errorf("service: could not confirm alert: %w", err)
	}
	if err := s.repo.InvalidateAlertCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate alert cache")
	}
	s.metrics.AlertsConfirmed.Inc()

	dispatched := *alert
	dispatched.Status = models.AlertStatusConfirmed
	if finalText != "" {
		dispatched.Text = finalText
	}

	results, err := s.dispatcher.Dispatch(ctx, &dispatched)
	if err != nil {
		log.WithError(err).Error("Failed to dispatch notifications")
		return nil, fmt.Errorf("service: could not dispatch notifications: %w", err)
	}

	log.WithField("notifications", len(results)).Info("Alert confirmed and notifications dispatched")
	return results, nil
}

// Dismiss переводит алерт pending -> dismissed без рассылки
func (s *alertService) Dismiss(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "Dismiss",
		"alert_id": id,
	})
	log.Info("Attempting to dismiss alert")

	alert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrAlertNotFound) {
			log.Warn("Attempted to dismiss a non-existent alert")
			return err
		}
		log.WithError(err).Error("Failed to get alert from repository")
		return fmt.Errorf("service: could not get alert for dismiss: %w", err)
	}

	if alert.Status != models.AlertStatusPending {
		log.WithField("status", alert.Status).Warn("Attempted to dismiss a non-pending alert")
		return models.ErrAlertNotPending
	}

	if err := s.repo.UpdateStatus(ctx, id, models.AlertStatusDismissed); err != nil {
		log.WithError(err).Error("Failed to update alert status")
		return fmt.Errorf("service: could not dismiss alert: %w", err)
	}
	if err := s.repo.InvalidateAlertCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate alert cache")
	}
	s.metrics.AlertsDismissed.Inc()

	log.Info("Alert dismissed successfully")
	return nil
}
