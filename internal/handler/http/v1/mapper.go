package v1

import "github.com/crisiswatch/crisis_alert_system/internal/models"

// ModelToAlertResponse преобразует доменную модель алерта в DTO для ответа
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:        model.ID,
		Text:      model.Text,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Status:    model.Status,
		CreatedAt: model.CreatedAt,
	}
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(alerts []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(alerts))
	for i, model := range alerts {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}

// ModelToSubscriptionResponse преобразует доменную модель подписки в DTO
func ModelToSubscriptionResponse(model *models.Subscription) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:        model.ID,
		Phone:     model.Phone,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		RadiusKm:  model.RadiusKm,
	}
}

// ModelsToSubscriptionResponses преобразует слайс моделей в слайс DTO
func ModelsToSubscriptionResponses(subs []*models.Subscription) []*SubscriptionResponse {
	responses := make([]*SubscriptionResponse, len(subs))
	for i, model := range subs {
		responses[i] = ModelToSubscriptionResponse(model)
	}
	return responses
}

// ResultsToResponses преобразует результаты рассылки в DTO
func ResultsToResponses(results []models.NotificationResult) []NotificationResultResponse {
	responses := make([]NotificationResultResponse, len(results))
	for i, r := range results {
		responses[i] = NotificationResultResponse{
			SubscriberID: r.SubscriberID,
			Success:      r.Success,
			Detail:       r.Detail,
		}
	}
	return responses
}
