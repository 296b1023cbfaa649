// Package metrics — счётчики Prometheus для вычислений.
package metrics

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/riaaa16/advanced-calc/internal/domain"
	"github.com/riaaa16/advanced-calc/internal/history"
)

var _ history.Observer = (*Observer)(nil)

// Observer — наблюдатель истории, считает добавленные вычисления по виду операции.
type Observer struct {
	calculations *prometheus.CounterVec
}

// NewObserver создаёт счётчик calculator_calculations_total{operation} и регистрирует его в reg.
// reg == nil — prometheus.DefaultRegisterer. Если счётчик уже зарегистрирован, используется существующий.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "calculator",
			Name:      "calculations_total",
			Help:      "Total number of calculations added to history",
		},
		[]string{"operation"},
	)
	if err := reg.Register(counter); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		counter = existing
	}
	return &Observer{calculations: counter}, nil
}

// Update увеличивает счётчик для вида операции.
func (o *Observer) Update(_ context.Context, c domain.Calculation) error {
	o.calculations.WithLabelValues(c.Operation.Kind()).Inc()
	return nil
}
