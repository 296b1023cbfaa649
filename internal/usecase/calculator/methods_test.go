package calculator

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/riaaa16/advanced-calc/internal/domain"
	"github.com/riaaa16/advanced-calc/internal/mocks"
	"github.com/riaaa16/advanced-calc/internal/registry"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func addition() *domain.Operation {
	return domain.NewOperation(domain.Addition{}, newTestLogger())
}

// Тест 1: полный флоу — результат, одна запись в истории, одно оповещение с этой записью.
func TestPerformOperation_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	obs := mocks.NewMockObserver(ctrl)
	var notified domain.Calculation
	obs.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domain.Calculation) error {
			notified = c
			return nil
		}).
		Times(1)

	uc := NewWithOwnHistory(registry.Default(newTestLogger()), newTestLogger())
	uc.Store().AddObserver(obs)

	result, err := uc.PerformOperation(context.Background(), addition(), domain.Int(2), domain.Int(3))

	require.NoError(t, err)
	assert.Equal(t, domain.Int(5), result)

	list := uc.History(context.Background())
	require.Len(t, list, 1)
	assert.Equal(t, "Calculation(2, addition, 3)", list[0].String())
	assert.Equal(t, list[0], notified, "наблюдатель получил именно добавленную запись")
}

// Тест 2: деление на ноль — запись уже в истории, вызывающий получает ошибку, вывод записи тоже падает.
func TestPerformOperation_DivisionByZero(t *testing.T) {
	uc := NewWithOwnHistory(nil, newTestLogger())
	div := domain.NewOperation(domain.Division{}, newTestLogger())

	_, err := uc.PerformOperation(context.Background(), div, domain.Float(5), domain.Float(0))

	assert.ErrorIs(t, err, domain.ErrDivisionByZero)
	list := uc.History(context.Background())
	require.Len(t, list, 1)
	_, err = list[0].Display()
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)
}

// Тест 3: ошибка наблюдателя возвращается вызывающему, запись остаётся.
func TestPerformOperation_ObserverError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("observer failed")
	obs := mocks.NewMockObserver(ctrl)
	obs.EXPECT().Update(gomock.Any(), gomock.Any()).Return(boom)

	uc := NewWithOwnHistory(nil, newTestLogger())
	uc.Store().AddObserver(obs)

	_, err := uc.PerformOperation(context.Background(), addition(), domain.Int(1), domain.Int(1))
	assert.ErrorIs(t, err, boom)
	assert.Len(t, uc.History(context.Background()), 1)
}

// Тест 4: Calculate по имени, регистр не важен.
func TestCalculate_ByName(t *testing.T) {
	uc := NewWithOwnHistory(registry.Default(newTestLogger()), newTestLogger())

	tests := []struct {
		name      string
		operation string
		a, b      domain.Number
		want      string
	}{
		{name: "сложение", operation: "add", a: domain.Float(10), b: domain.Float(5), want: "15.0"},
		{name: "вычитание", operation: "SUBTRACT", a: domain.Float(10), b: domain.Float(5), want: "5.0"},
		{name: "умножение", operation: "Multiply", a: domain.Float(3.14), b: domain.Float(2), want: "6.28"},
		{name: "деление", operation: "divide", a: domain.Int(8), b: domain.Int(2), want: "4.0"},
		{name: "алиас", operation: "+", a: domain.Int(1), b: domain.Int(1), want: "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Calculate(context.Background(), tt.operation, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
	assert.Len(t, uc.History(context.Background()), len(tests))
}

// Тест 5: неизвестная операция — ErrUnknownOperation, история не меняется.
func TestCalculate_UnknownOperation(t *testing.T) {
	uc := NewWithOwnHistory(nil, newTestLogger())

	_, err := uc.Calculate(context.Background(), "modulo", domain.Int(1), domain.Int(2))

	assert.ErrorIs(t, err, domain.ErrUnknownOperation)
	assert.Contains(t, err.Error(), "modulo")
	assert.Empty(t, uc.History(context.Background()))
}

// Тест 6: Clear очищает историю.
func TestClear(t *testing.T) {
	uc := NewWithOwnHistory(nil, newTestLogger())
	_, err := uc.Calculate(context.Background(), "add", domain.Int(1), domain.Int(2))
	require.NoError(t, err)

	uc.Clear(context.Background())

	assert.Empty(t, uc.History(context.Background()))
}

func TestOperations(t *testing.T) {
	uc := NewWithOwnHistory(nil, newTestLogger())
	assert.Equal(t, []string{"add", "subtract", "multiply", "divide"}, uc.Operations())
}
