// Package journal переносит записи истории во внешнюю инфраструктуру: журнал (PG/Mongo),
// кэш результатов (Redis), брокер (Kafka) и аналитику (ClickHouse).
package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/riaaa16/advanced-calc/internal/domain"
	"github.com/riaaa16/advanced-calc/internal/history"
	"github.com/riaaa16/advanced-calc/internal/ports"
)

var (
	_ history.Observer     = (*Recorder)(nil)
	_ ports.IJournalReader = (*Recorder)(nil)
	_ ports.IHealthChecker = (*Recorder)(nil)
)

// Recorder — наблюдатель истории: каждую новую Calculation сохраняет в журнал, кладёт результат
// в кэш и публикует в брокер. Любая зависимость может быть nil — тогда шаг пропускается.
type Recorder struct {
	repo   ports.IJournalRepository
	cache  ports.ICache
	broker ports.IProducer
	log    *slog.Logger
}

// NewRecorder создаёт наблюдатель-журнал.
func NewRecorder(repo ports.IJournalRepository, cache ports.ICache, broker ports.IProducer, log *slog.Logger) *Recorder {
	if log == nil {
		log = slog.Default()
	}
	return &Recorder{repo: repo, cache: cache, broker: broker, log: log}
}

// Update — журнал → кэш → брокер. Ошибки журнала и кэша возвращаются, ошибка брокера только логируется.
func (r *Recorder) Update(ctx context.Context, c domain.Calculation) error {
	rec := domain.NewRecord(c)
	key := rec.Key()

	if r.repo != nil {
		if err := r.repo.SaveRecord(ctx, rec); err != nil {
			return fmt.Errorf("journal save: %w", err)
		}
		r.log.Info("record saved", "key", key, "result", rec.Result)
	}

	// Неудачные вычисления в кэш не кладём.
	if r.cache != nil && rec.Message == "" {
		if err := r.cache.Set(ctx, key, rec.Result); err != nil {
			return fmt.Errorf("cache set: %w", err)
		}
	}

	if r.broker == nil {
		return nil
	}
	if err := r.broker.Publish(ctx, rec); err != nil {
		r.log.Warn("broker send", "key", key, "error", err)
	} else {
		r.log.Info("record published", "key", key, "result", rec.Result)
	}
	return nil
}

// Journal — сохранённые записи (последние сначала).
func (r *Recorder) Journal(ctx context.Context) ([]domain.Record, error) {
	if r.repo == nil {
		return nil, domain.ErrJournalDisabled
	}
	return r.repo.GetJournal(ctx)
}

// Cached — последний результат по ключу операции ("10 addition 5"). Без кэша — found == false.
func (r *Recorder) Cached(ctx context.Context, key string) (float64, bool, error) {
	if r.cache == nil {
		return 0, false, nil
	}
	return r.cache.Get(ctx, key)
}

// Ping проверяет журнал (для readiness). Без журнала проверять нечего.
func (r *Recorder) Ping(ctx context.Context) error {
	if r.repo == nil {
		return nil
	}
	return r.repo.Ping(ctx)
}
