package models

import (
	"time"

	"github.com/google/uuid"
)

// CandidatePost - сырой геотегированный пост из источника (стрим или ручной ввод),
// ещё не прошедший классификатор.
type CandidatePost struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Source    string    `json:"source,omitempty"`
	PostedAt  time.Time `json:"posted_at"`
}
