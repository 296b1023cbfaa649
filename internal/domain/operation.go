package domain

import (
	"log/slog"
	"reflect"
	"strings"
)

// Strategy — тип-специфичный шаг операции: сама арифметика над уже проверенными операндами.
// Новая операция = новый тип Strategy + одна запись в реестре.
type Strategy interface {
	Execute(a, b Number) (Number, error)
}

// Operation — шаблонный метод над Strategy: валидация → Execute → лог результата.
// Не хранит состояния, один экземпляр можно использовать для любого числа вычислений.
type Operation struct {
	strategy Strategy
	log      *slog.Logger
}

// NewOperation оборачивает стратегию. Если log == nil, пишет в slog.Default().
// Пустая стратегия — ошибка программиста, NewOperation паникует.
func NewOperation(s Strategy, log *slog.Logger) *Operation {
	if s == nil {
		panic("domain: NewOperation with nil strategy")
	}
	return &Operation{strategy: s, log: log}
}

// Kind — имя вида операции в нижнем регистре, выводится из типа стратегии ("addition", "division").
func (o *Operation) Kind() string {
	t := reflect.TypeOf(o.strategy)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strings.ToLower(t.Name())
}

// Strategy возвращает обёрнутую стратегию.
func (o *Operation) Strategy() Strategy {
	return o.strategy
}

// Calculate проверяет операнды, выполняет стратегию и логирует результат.
func (o *Operation) Calculate(a, b any) (Number, error) {
	x, y, err := o.validate(a, b)
	if err != nil {
		return Number{}, err
	}
	result, err := o.strategy.Execute(x, y)
	if err != nil {
		o.logger().Error("operation failed", "operation", o.Kind(), "a", x.String(), "b", y.String(), "error", err)
		return Number{}, err
	}
	o.logger().Info("operation performed", "operation", o.Kind(), "a", x.String(), "b", y.String(), "result", result.String())
	return result, nil
}

func (o *Operation) validate(a, b any) (Number, Number, error) {
	x, errA := ToNumber(a)
	y, errB := ToNumber(b)
	if errA != nil || errB != nil {
		o.logger().Error("invalid input", "a", a, "b", b, "error", ErrInvalidOperand)
		if errA != nil {
			return Number{}, Number{}, errA
		}
		return Number{}, Number{}, errB
	}
	return x, y, nil
}

func (o *Operation) logger() *slog.Logger {
	if o.log == nil {
		return slog.Default()
	}
	return o.log
}
