package v1

import (
	"time"
)

// CreateAlertRequest DTO для ручного создания тестового алерта.
// Локация задается либо координатами, либо адресом (адрес геокодируется).
// @Description DTO для ручного создания тестового алерта
type CreateAlertRequest struct {
	Text      string   `json:"text" validate:"required,min=2"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Address   string   `json:"address,omitempty"`
}

// ConfirmAlertRequest DTO для подтверждения алерта.
// Text - финальный (возможно, отредактированный оператором) текст рассылки;
// пустое значение оставляет исходный текст алерта.
// @Description DTO для подтверждения алерта
type ConfirmAlertRequest struct {
	Text string `json:"text,omitempty"`
}

// AlertResponse DTO для ответа с информацией об алерте
// @Description DTO для ответа с информацией об алерте
type AlertResponse struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationResultResponse DTO результата одной попытки доставки SMS
// @Description DTO результата одной попытки доставки SMS
type NotificationResultResponse struct {
	SubscriberID int64  `json:"subscriber_id"`
	Success      bool   `json:"success"`
	Detail       string `json:"detail"`
}

// ConfirmAlertResponse DTO для ответа на подтверждение алерта
// @Description DTO для ответа на подтверждение алерта
type ConfirmAlertResponse struct {
	AlertID  int64                        `json:"alert_id"`
	Notified int                          `json:"notified"`
	Results  []NotificationResultResponse `json:"results"`
}

// RegisterSubscriptionRequest DTO для регистрации подписчика.
// Локация задается либо координатами, либо адресом.
// @Description DTO для регистрации подписчика
type RegisterSubscriptionRequest struct {
	Phone     string   `json:"phone" validate:"required,e164"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Address   string   `json:"address,omitempty"`
	RadiusKm  float64  `json:"radius_km" validate:"required,gt=0"`
}

// SubscriptionResponse DTO для ответа с информацией о подписке
// @Description DTO для ответа с информацией о подписке
type SubscriptionResponse struct {
	ID        int64   `json:"id"`
	Phone     string  `json:"phone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km"`
}

// IngestPostRequest DTO для публикации поста-кандидата в очередь инжеста
// @Description DTO для публикации поста-кандидата
type IngestPostRequest struct {
	Text      string  `json:"text" validate:"required,min=2"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Source    string  `json:"source,omitempty"`
}

// GeocodeRequest DTO для геокодирования адреса
// @Description DTO для геокодирования адреса
type GeocodeRequest struct {
	Address string `json:"address" validate:"required,min=2"`
}

// GeocodeResponse DTO для ответа геокодера
// @Description DTO для ответа геокодера
type GeocodeResponse struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formatted_address"`
}
