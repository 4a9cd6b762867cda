package broker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/segmentio/kafka-go"
)

type HandlerFunc func(ctx context.Context, msg kafka.Message) error

// Consumer reads from a set of topics within one consumer group and
// dispatches each message to the handler registered for its topic.
type Consumer struct {
	l        *slog.Logger
	readers  map[string]*kafka.Reader
	handlers map[string]HandlerFunc
	wg       sync.WaitGroup
}

func NewConsumer(l *slog.Logger, brokers []string, groupID string, topics []string) *Consumer {
	l = l.WithGroup("kafka").With("group_id", groupID)

	readers := make(map[string]*kafka.Reader, len(topics))

	for _, topic := range topics {
		readers[topic] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:     brokers,
			GroupID:     groupID,
			Topic:       topic,
			Logger:      &printfLogger{l: l.With("topic", topic), level: slog.LevelDebug},
			ErrorLogger: &printfLogger{l: l.With("topic", topic), level: slog.LevelError},
		})
	}

	return &Consumer{
		l:        l,
		readers:  readers,
		handlers: make(map[string]HandlerFunc, len(topics)),
	}
}

func (c *Consumer) Handle(topic string, fn HandlerFunc) {
	c.handlers[topic] = fn
}

// Consume starts one goroutine per topic. A handler error is logged and the
// message is committed anyway: each trigger firing is terminal, redelivery is
// left to the producing side.
func (c *Consumer) Consume(ctx context.Context) {
	for topic, r := range c.readers {
		fn, ok := c.handlers[topic]
		if !ok {
			c.l.Warn("no handler registered for topic", "topic", topic)
			continue
		}

		c.wg.Add(1)

		go c.consumeTopic(ctx, r, fn)
	}
}

func (c *Consumer) consumeTopic(ctx context.Context, r *kafka.Reader, fn HandlerFunc) {
	defer c.wg.Done()

	for {
		msg, err := r.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return
			}

			c.l.Error(fmt.Sprintf("fetch message: %s", err))

			continue
		}

		err = fn(ctx, msg)
		if err != nil {
			c.l.Error(fmt.Sprintf("handle message: %s", err), "topic", msg.Topic, "offset", msg.Offset)
		}

		err = r.CommitMessages(ctx, msg)
		if err != nil {
			c.l.Error(fmt.Sprintf("commit message: %s", err))
		}
	}
}

func (c *Consumer) Close() {
	for _, r := range c.readers {
		err := r.Close()
		if err != nil {
			c.l.Error(fmt.Sprintf("close kafka reader: %s", err))
		}
	}

	c.wg.Wait()
}
