package models

import (
	"time"
)

// Статусы жизненного цикла алерта.
// pending -> confirmed (с рассылкой) или pending -> dismissed (без рассылки).
// confirmed и dismissed - терминальные статусы.
const (
	AlertStatusPending   = "pending"
	AlertStatusConfirmed = "confirmed"
	AlertStatusDismissed = "dismissed"
)

// Alert представляет кандидата или подтверждённое кризисное событие
type Alert struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
