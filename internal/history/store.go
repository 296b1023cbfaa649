// Package history — упорядоченная история вычислений с оповещением наблюдателей.
package history

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/riaaa16/advanced-calc/internal/domain"
)

// Store — история вычислений в порядке добавления. Безопасна для конкурентного использования:
// сервисы HTTP и gRPC держат один и тот же *Store.
type Store struct {
	mu        sync.RWMutex
	items     []domain.Calculation
	observers []Observer
	log       *slog.Logger
}

// NewStore создаёт пустую историю.
func NewStore(log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{log: log}
}

// AddObserver регистрирует наблюдателя. Дубликаты не отсекаются, порядок регистрации = порядок оповещения.
func (s *Store) AddObserver(o Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, o)
	n := len(s.observers)
	s.mu.Unlock()
	s.log.Debug("observer added", "observers", n)
}

// Append добавляет вычисление в конец и оповещает наблюдателей по порядку.
// Наблюдатели вызываются вне блокировки. Первая ошибка наблюдателя прерывает оповещение
// и возвращается; запись при этом остаётся в истории.
func (s *Store) Append(ctx context.Context, c domain.Calculation) error {
	s.mu.Lock()
	s.items = append(s.items, c)
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	s.log.Debug("calculation appended", "calculation", c.String())
	for i, o := range observers {
		if err := o.Update(ctx, c); err != nil {
			s.log.Warn("observer failed, notification aborted", "observer", i, "calculation", c.String(), "error", err)
			return fmt.Errorf("notify observer %d: %w", i, err)
		}
		s.log.Debug("notified observer", "observer", i, "calculation", c.String())
	}
	return nil
}

// List возвращает копию истории в хронологическом порядке.
func (s *Store) List() []domain.Calculation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Calculation, len(s.items))
	copy(out, s.items)
	return out
}

// Len — количество записей.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Clear очищает историю. Наблюдатели не оповещаются.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	s.log.Info("history cleared")
}
