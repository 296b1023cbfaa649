package calculator

import (
	"context"
	"fmt"

	"github.com/riaaa16/advanced-calc/internal/domain"
)

// PerformOperation — записывает вычисление в историю (наблюдатели срабатывают сразу), затем
// отдельно выполняет операцию и возвращает результат. Ошибка наблюдателя возвращается без вычисления.
// Деление на ноль сначала попадает в историю, а потом возвращает ErrDivisionByZero.
func (u *UseCase) PerformOperation(ctx context.Context, op *domain.Operation, a, b domain.Number) (domain.Number, error) {
	calc := domain.NewCalculation(op, a, b)
	if err := u.history.Append(ctx, calc); err != nil {
		return domain.Number{}, err
	}
	u.log.Debug("performed operation", "calculation", calc.String())

	return op.Calculate(a, b)
}

// Resolve — операция по имени; (nil, false), если такой нет.
func (u *UseCase) Resolve(name string) (*domain.Operation, bool) {
	return u.registry.Resolve(name)
}

// Calculate — PerformOperation по имени операции. Неизвестное имя — ErrUnknownOperation.
func (u *UseCase) Calculate(ctx context.Context, operation string, a, b domain.Number) (domain.Number, error) {
	op, ok := u.registry.Resolve(operation)
	if !ok {
		return domain.Number{}, fmt.Errorf("%w: %s", domain.ErrUnknownOperation, operation)
	}
	return u.PerformOperation(ctx, op, a, b)
}

// History — история вычислений (обвязка над Store).
func (u *UseCase) History(_ context.Context) []domain.Calculation {
	return u.history.List()
}

// Clear очищает историю.
func (u *UseCase) Clear(_ context.Context) {
	u.history.Clear()
}

// Operations — имена доступных операций.
func (u *UseCase) Operations() []string {
	return u.registry.Names()
}
