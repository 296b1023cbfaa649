package ports

//go:generate mockgen -source=broker.go -destination=../mocks/broker_mock.go -package=mocks

import (
	"context"

	"github.com/riaaa16/advanced-calc/internal/domain"
)

// IProducer публикует запись журнала в брокер. Топик и формат сообщения задаёт реализация.
type IProducer interface {
	Publish(ctx context.Context, rec domain.Record) error
}
