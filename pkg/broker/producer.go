package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
)

type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &printfLogger{l: l, level: slog.LevelInfo},
		ErrorLogger:            &printfLogger{l: l, level: slog.LevelError},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

type ScheduleSyncedEvent struct {
	ClientID uuid.UUID `json:"clientId"`
	Created  int       `json:"created"`
	Updated  int       `json:"updated"`
	Deleted  int       `json:"deleted"`
}

// SendScheduleSynced publishes the operation counts of a completed sweep.
// Messages are keyed by client ID so downstream consumers see one client's
// events in order.
func (p *Producer) SendScheduleSynced(ctx context.Context, clientID uuid.UUID, created, updated, deleted int) {
	event := ScheduleSyncedEvent{
		ClientID: clientID,
		Created:  created,
		Updated:  updated,
		Deleted:  deleted,
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(clientID.String()),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
