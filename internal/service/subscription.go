package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/crisiswatch/crisis_alert_system/internal/models"
)

//go:generate mockgen -source=subscription.go -destination=mocks/mock_subscription.go -package=mocks

// SubscriptionRepository определяет контракт для работы с бд подписок
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *models.Subscription) error
	ListAll(ctx context.Context) ([]*models.Subscription, error)
}

// SubscriptionService определяет контракт бизнес-логики подписок
type SubscriptionService interface {
	Register(ctx context.Context, sub *models.Subscription) error
	ListAll(ctx context.Context) ([]*models.Subscription, error)
}

type subscriptionService struct {
	repo   SubscriptionRepository
	logger *logrus.Logger
}

func NewSubscriptionService(repo SubscriptionRepository, logger *logrus.Logger) SubscriptionService {
	return &subscriptionService{
		repo:   repo,
		logger: logger,
	}
}

// Register регистрирует подписчика. Повторная регистрация того же номера
// возвращает ErrDuplicateSubscriber без изменения состояния.
func (s *subscriptionService) Register(ctx context.Context, sub *models.Subscription) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "subscription",
		"method":  "Register",
		"phone":   sub.Phone,
	})
	log.Info("Attempting to register a new subscriber")

	if err := s.repo.Create(ctx, sub); err != nil {
		if errors.Is(err, models.ErrDuplicateSubscriber) {
			log.Warn("Phone number already registered")
			return err
		}
		log.WithError(err).Error("Failed to create subscription in repository")
		return fmt.Errorf("service: could not register subscriber: %w", err)
	}

	log.WithField("subscription_id", sub.ID).Info("Subscriber registered successfully")
	return nil
}

// ListAll возвращает всех зарегистрированных подписчиков
func (s *subscriptionService) ListAll(ctx context.Context) ([]*models.Subscription, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "subscription",
		"method":  "ListAll",
	})

	subs, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list subscriptions from repository")
		return nil, fmt.Errorf("service: could not list subscriptions: %w", err)
	}

	log.WithField("count", len(subs)).Info("Subscriptions listed successfully")
	return subs, nil
}
