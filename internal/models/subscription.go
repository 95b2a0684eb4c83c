package models

// Subscription представляет зарегистрированного получателя SMS-уведомлений.
// Номер телефона уникален на уровне БД.
type Subscription struct {
	ID        int64   `json:"id"`
	Phone     string  `json:"phone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km"`
}

// NotificationResult - результат одной попытки доставки SMS.
// Не персистится, возвращается оператору для отображения.
type NotificationResult struct {
	SubscriberID int64  `json:"subscriber_id"`
	Success      bool   `json:"success"`
	Detail       string `json:"detail"` // message SID провайдера или текст ошибки
}
