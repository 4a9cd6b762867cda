package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/shinebright/schedule/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=event_handler.go -destination=../../mocks/events.go -package=mocks -mock_names=Service=MockEventsService

type Service interface {
	SyncClientSchedule(ctx context.Context, prev, next *entity.Client) error
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

// ClientSnapshot is the wire form of a client record inside a change event.
// Contract days are weekday indices, 0 = Sunday.
type ClientSnapshot struct {
	ID                   uuid.UUID       `json:"id"`
	Name                 string          `json:"name"`
	Address              string          `json:"address"`
	ContractDays         []int           `json:"contractDays"`
	AssignedEmployeeID   *uuid.UUID      `json:"assignedEmployeeId"`
	AssignedEmployeeName string          `json:"assignedEmployeeName"`
	VisitPrice           decimal.Decimal `json:"visitPrice"`
}

// ClientUpdatedEvent carries the before/after snapshots of a client write.
// Before is absent on create, After is absent on delete.
type ClientUpdatedEvent struct {
	ClientID uuid.UUID       `json:"clientId"`
	Before   *ClientSnapshot `json:"before,omitempty"`
	After    *ClientSnapshot `json:"after,omitempty"`
}

func (h *EventHandler) ClientUpdated(ctx context.Context, msg kafka.Message) error {
	var event ClientUpdatedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	err = h.s.SyncClientSchedule(ctx, toEntity(event.Before), toEntity(event.After))
	if err != nil {
		return fmt.Errorf("sync schedule for client %s: %w", event.ClientID, err)
	}

	return nil
}

func toEntity(snap *ClientSnapshot) *entity.Client {
	if snap == nil {
		return nil
	}

	days := make([]time.Weekday, 0, len(snap.ContractDays))
	for _, d := range snap.ContractDays {
		days = append(days, time.Weekday(d))
	}

	return &entity.Client{
		ID:                   snap.ID,
		Name:                 snap.Name,
		Address:              snap.Address,
		ContractDays:         days,
		AssignedEmployeeID:   snap.AssignedEmployeeID,
		AssignedEmployeeName: snap.AssignedEmployeeName,
		VisitPrice:           snap.VisitPrice,
	}
}
