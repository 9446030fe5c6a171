package ws

import (
	"encoding/json"
	"time"

	"talentgate/internal/domain/screening"
)

// ScreeningCompletedEvent is pushed to connected recruiter clients when a CV
// screening verdict lands.
type ScreeningCompletedEvent struct {
	Type        string            `json:"type"`
	InterviewID string            `json:"interviewID"`
	Outcome     screening.Outcome `json:"outcome"`
	Timestamp   string            `json:"timestamp"`
}

// Notifier broadcasts screening events over a hub. It is injected where
// needed; there is no process-global hub.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) ScreeningCompleted(interviewID string, out screening.Outcome) {
	if n == nil || n.hub == nil {
		return
	}

	evt := ScreeningCompletedEvent{
		Type:        "screening_completed",
		InterviewID: interviewID,
		Outcome:     out,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
