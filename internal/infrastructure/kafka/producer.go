package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/riaaa16/advanced-calc/internal/domain"
	"github.com/riaaa16/advanced-calc/internal/ports"
)

var _ ports.IProducer = (*Producer)(nil)

const contentTypeJSON = "application/json"

// Producer публикует записи журнала в топик calculations.
type Producer struct {
	w *kafka.Writer
}

// NewProducer создаёт продюсера по конфигу. После использования вызови Close().
func NewProducer(cfg *Config) *Producer {
	return New(cfg).Producer()
}

// Publish отправляет запись. Ключ сообщения — вид операции (addition, division, ...),
// так все записи одной операции идут в одну партицию по порядку.
func (p *Producer) Publish(ctx context.Context, rec domain.Record) error {
	msg, err := recordMessage(rec)
	if err != nil {
		return err
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka publish %s: %w", rec.Operation, err)
	}
	return nil
}

// recordMessage кодирует запись в сообщение: JSON в значении, время вычисления в Time.
func recordMessage(rec domain.Record) (kafka.Message, error) {
	value, err := json.Marshal(rec)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode record: %w", err)
	}
	return kafka.Message{
		Key:     []byte(rec.Operation),
		Value:   value,
		Time:    rec.Timestamp,
		Headers: []kafka.Header{{Key: "content-type", Value: []byte(contentTypeJSON)}},
	}, nil
}

// decodeRecord — обратное к recordMessage.
func decodeRecord(msg kafka.Message) (domain.Record, error) {
	var rec domain.Record
	if err := json.Unmarshal(msg.Value, &rec); err != nil {
		return domain.Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

// Close закрывает продюсера.
func (p *Producer) Close() error {
	return p.w.Close()
}
