package notify

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/crisiswatch/crisis_alert_system/internal/geo"
	"github.com/crisiswatch/crisis_alert_system/internal/models"
	"github.com/crisiswatch/crisis_alert_system/internal/observability"
)

//go:generate mockgen -source=dispatcher.go -destination=mocks/mock_dispatcher.go -package=mocks

// maxAlertTextLen - ограничение длины текста алерта в SMS
const maxAlertTextLen = 100

// SubscriptionSource отдает список подписчиков для матчинга
type SubscriptionSource interface {
	ListAll(ctx context.Context) ([]*models.Subscription, error)
}

// SMSSender - клиент внешнего SMS-провайдера.
// Возвращает идентификатор сообщения провайдера или ошибку доставки.
type SMSSender interface {
	Send(ctx context.Context, toPhone, message string) (string, error)
}

// Dispatcher вычисляет множество подписчиков в радиусе алерта и рассылает SMS.
// Доставка best-effort: ошибка по одному получателю не прерывает остальных,
// повторных попыток нет.
type Dispatcher struct {
	subs    SubscriptionSource
	sender  SMSSender
	logger  *logrus.Logger
	metrics *observability.Metrics
}

func NewDispatcher(subs SubscriptionSource, sender SMSSender, logger *logrus.Logger, metrics *observability.Metrics) *Dispatcher {
	return &Dispatcher{
		subs:    subs,
		sender:  sender,
		logger:  logger,
		metrics: metrics,
	}
}

// Dispatch рассылает уведомления всем подписчикам, у которых алерт попадает
// в их радиус. Возвращает результат по каждому затронутому подписчику в порядке
// обхода; подписчики вне радиуса в результат не попадают.
func (d *Dispatcher) Dispatch(ctx context.Context, alert *models.Alert) ([]models.NotificationResult, error) {
	log := d.logger.WithFields(logrus.Fields{
		"service":  "dispatcher",
		"alert_id": alert.ID,
	})

	subs, err := d.subs.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("dispatcher: could not list subscriptions: %w", err)
	}

	message := BuildMessage(alert)
	results := make([]models.NotificationResult, 0)

	for _, sub := range subs {
		if !geo.IsWithinRadius(sub.Latitude, sub.Longitude, alert.Latitude, alert.Longitude, sub.RadiusKm) {
			continue
		}

		sid, err := d.sender.Send(ctx, sub.Phone, message)
		if err != nil {
			log.WithError(err).WithField("subscription_id", sub.ID).Warn("SMS delivery failed")
			d.metrics.Notifications.WithLabelValues("failure").Inc()
			results = append(results, models.NotificationResult{
				SubscriberID: sub.ID,
				Success:      false,
				Detail:       err.Error(),
			})
			continue
		}

		d.metrics.Notifications.WithLabelValues("success").Inc()
		results = append(results, models.NotificationResult{
			SubscriberID: sub.ID,
			Success:      true,
			Detail:       sid,
		})
	}

	log.WithField("notified", len(results)).Info("Dispatch completed")
	return results, nil
}

// BuildMessage собирает текст SMS: первые 100 символов текста алерта,
// координаты и фиксированная рекомендация по безопасности
func BuildMessage(alert *models.Alert) string {
	text := alert.Text
	if runes := []rune(text); len(runes) > maxAlertTextLen {
		text = string(runes[:maxAlertTextLen])
	}
	return fmt.Sprintf(
		"CRISIS ALERT: %s... Location: %.4f, %.4f. Stay safe and follow official guidance.",
		text, alert.Latitude, alert.Longitude,
	)
}
