package domain

import (
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")
var ErrInvalidSessionToken = errors.New("invalid session token")
var ErrInvalidOption = errors.New("invalid option")
var ErrUnknownCTA = errors.New("unknown cta")

// WidgetSession is one mounted dispatch widget: its draft and its stage.
// It lives until the visitor unmounts the widget or the TTL lapses.
type WidgetSession struct {
	ID        string       `json:"id" bson:"_id"`
	Input     BookingInput `json:"input" bson:"input"`
	Stage     Stage        `json:"stage" bson:"stage"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at"`
}

// NewWidgetSession returns a session in its mount state.
func NewWidgetSession(id string, now time.Time) *WidgetSession {
	return &WidgetSession{
		ID:        id,
		Stage:     StageDetails,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
