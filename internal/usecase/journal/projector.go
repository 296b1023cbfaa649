package journal

import (
	"context"
	"log/slog"

	"github.com/riaaa16/advanced-calc/internal/domain"
	"github.com/riaaa16/advanced-calc/internal/ports"
)

var _ ports.IRecordHandler = (*Projector)(nil)

// Projector пишет события из топика вычислений в аналитику.
type Projector struct {
	analytics ports.IRecordAnalytics
	log       *slog.Logger
}

// NewProjector создаёт обработчик событий для консьюмера.
func NewProjector(analytics ports.IRecordAnalytics, log *slog.Logger) *Projector {
	if log == nil {
		log = slog.Default()
	}
	return &Projector{analytics: analytics, log: log}
}

// HandleRecordEvent вызывается консьюмером при получении сообщения из топика.
func (p *Projector) HandleRecordEvent(ctx context.Context, rec domain.Record) error {
	if err := p.analytics.WriteRecord(ctx, rec); err != nil {
		p.log.Warn("analytics write", "error", err)
		return err
	}
	p.log.Info("record stored to click", "number1", rec.Number1, "operation", rec.Operation, "number2", rec.Number2, "result", rec.Result)
	return nil
}
