package history

//go:generate mockgen -source=observer.go -destination=../mocks/observer_mock.go -package=mocks

import (
	"context"
	"log/slog"

	"github.com/riaaa16/advanced-calc/internal/domain"
)

// Observer получает каждую добавленную в историю Calculation.
// Ошибка наблюдателя прерывает оповещение остальных и возвращается из Store.Append.
type Observer interface {
	Update(ctx context.Context, c domain.Calculation) error
}

// ObserverFunc — адаптер функции к Observer.
type ObserverFunc func(ctx context.Context, c domain.Calculation) error

// Update вызывает f.
func (f ObserverFunc) Update(ctx context.Context, c domain.Calculation) error {
	return f(ctx, c)
}

// LogObserver пишет в лог каждую новую запись истории.
func LogObserver(log *slog.Logger) Observer {
	if log == nil {
		log = slog.Default()
	}
	return ObserverFunc(func(_ context.Context, c domain.Calculation) error {
		log.Info("observer: new calculation added", "calculation", c.String())
		return nil
	})
}

// Tolerant изолирует наблюдателя: его ошибка логируется и не доходит до Append.
func Tolerant(o Observer, log *slog.Logger) Observer {
	if log == nil {
		log = slog.Default()
	}
	return ObserverFunc(func(ctx context.Context, c domain.Calculation) error {
		if err := o.Update(ctx, c); err != nil {
			log.Warn("observer failed", "calculation", c.String(), "error", err)
		}
		return nil
	})
}
