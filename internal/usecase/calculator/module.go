package calculator

import (
	"log/slog"

	"github.com/riaaa16/advanced-calc/internal/history"
	"github.com/riaaa16/advanced-calc/internal/ports"
	"github.com/riaaa16/advanced-calc/internal/registry"
)

var _ ports.ICalculatorUseCase = (*UseCase)(nil)

// UseCase — бизнес-логика калькулятора: операция → Calculation → история → результат.
type UseCase struct {
	history  *history.Store
	registry *registry.Registry
	log      *slog.Logger
}

// New создаёт юзкейс поверх переданной истории. Все юзкейсы, получившие один и тот же *history.Store,
// видят общую историю: историю создают один раз при старте и раздают ссылку явно.
func New(store *history.Store, reg *registry.Registry, log *slog.Logger) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	if reg == nil {
		reg = registry.Default(log)
	}
	return &UseCase{history: store, registry: reg, log: log}
}

// NewWithOwnHistory создаёт юзкейс со своей собственной историей.
func NewWithOwnHistory(reg *registry.Registry, log *slog.Logger) *UseCase {
	return New(history.NewStore(log), reg, log)
}

// Store возвращает историю, к которой привязан юзкейс.
func (u *UseCase) Store() *history.Store {
	return u.history
}
