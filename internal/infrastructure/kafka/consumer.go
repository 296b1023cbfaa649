package kafka

import (
	"context"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/riaaa16/advanced-calc/internal/ports"
)

// Consumer — обёртка над kafka.Reader, декодирует сообщения в domain.Record и передаёт обработчику.
type Consumer struct {
	r       *kafka.Reader
	handler ports.IRecordHandler
	log     *slog.Logger
}

// NewConsumer создаёт консьюмера по конфигу, обработчику и логгеру. После использования вызови Close().
func NewConsumer(cfg *Config, handler ports.IRecordHandler, log *slog.Logger) *Consumer {
	c := New(cfg).Consumer()
	c.handler = handler
	c.log = log
	return c
}

// Run в цикле читает сообщения, декодирует JSON в domain.Record, вызывает handler.HandleRecordEvent и коммитит при успехе.
// Выход по отмене ctx или при ошибке чтения.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		if err := c.handle(ctx, msg); err != nil {
			c.log.Warn("kafka handle error, not committed", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			continue
		}

		if err := c.r.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// handle декодирует сообщение и передаёт его обработчику. Битые сообщения пропускаются (nil), чтобы их закоммитить.
func (c *Consumer) handle(ctx context.Context, msg kafka.Message) error {
	rec, err := decodeRecord(msg)
	if err != nil {
		c.log.Warn("kafka unmarshal error, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
		return nil
	}
	return c.handler.HandleRecordEvent(ctx, rec)
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
