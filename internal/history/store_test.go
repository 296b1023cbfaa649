package history

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/riaaa16/advanced-calc/internal/domain"
	"github.com/riaaa16/advanced-calc/internal/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func addition(a, b int64) domain.Calculation {
	return domain.NewCalculation(domain.NewOperation(domain.Addition{}, newTestLogger()), domain.Int(a), domain.Int(b))
}

func TestStore_AppendKeepsOrder(t *testing.T) {
	s := NewStore(newTestLogger())
	ctx := context.Background()

	for i := int64(0); i < 5; i++ {
		require.NoError(t, s.Append(ctx, addition(i, i)))
	}

	list := s.List()
	require.Len(t, list, 5)
	assert.Equal(t, 5, s.Len())
	for i, c := range list {
		assert.Equal(t, float64(i), c.Operand1.Float64(), "запись %d не на своём месте", i)
	}
}

func TestStore_NoDeduplication(t *testing.T) {
	s := NewStore(newTestLogger())
	c := addition(1, 1)
	require.NoError(t, s.Append(context.Background(), c))
	require.NoError(t, s.Append(context.Background(), c))
	assert.Equal(t, 2, s.Len())
}

func TestStore_ListIsCopy(t *testing.T) {
	s := NewStore(newTestLogger())
	require.NoError(t, s.Append(context.Background(), addition(1, 2)))

	list := s.List()
	list[0] = addition(100, 100)

	assert.Equal(t, 1.0, s.List()[0].Operand1.Float64())
}

func TestStore_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	obs := mocks.NewMockObserver(ctrl)
	// Два добавления — два вызова; Clear наблюдателя не трогает.
	obs.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	s := NewStore(newTestLogger())
	s.AddObserver(obs)
	require.NoError(t, s.Append(context.Background(), addition(1, 2)))
	require.NoError(t, s.Append(context.Background(), addition(3, 4)))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.List())
}

func TestStore_ObserversNotifiedInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := mocks.NewMockObserver(ctrl)
	second := mocks.NewMockObserver(ctrl)
	c := addition(2, 3)

	gomock.InOrder(
		first.EXPECT().Update(gomock.Any(), c).Return(nil),
		second.EXPECT().Update(gomock.Any(), c).Return(nil),
	)

	s := NewStore(newTestLogger())
	s.AddObserver(first)
	s.AddObserver(second)

	require.NoError(t, s.Append(context.Background(), c))
}

// Наблюдатель, зарегистрированный дважды, вызывается дважды.
func TestStore_DuplicateObserver(t *testing.T) {
	calls := 0
	obs := ObserverFunc(func(context.Context, domain.Calculation) error {
		calls++
		return nil
	})
	s := NewStore(newTestLogger())
	s.AddObserver(obs)
	s.AddObserver(obs)

	require.NoError(t, s.Append(context.Background(), addition(1, 1)))
	assert.Equal(t, 2, calls)
}

// Наблюдатель, добавленный после записи, о ней не узнаёт.
func TestStore_LateObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewStore(newTestLogger())
	require.NoError(t, s.Append(context.Background(), addition(1, 1)))

	late := mocks.NewMockObserver(ctrl)
	late.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.AddObserver(late)

	require.NoError(t, s.Append(context.Background(), addition(2, 2)))
}

// Ошибка наблюдателя прерывает оповещение и возвращается из Append; запись остаётся в истории.
func TestStore_ObserverErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("boom")
	failing := mocks.NewMockObserver(ctrl)
	never := mocks.NewMockObserver(ctrl)
	failing.EXPECT().Update(gomock.Any(), gomock.Any()).Return(boom)
	// never.Update не ожидается: gomock упадёт при лишнем вызове.

	s := NewStore(newTestLogger())
	s.AddObserver(failing)
	s.AddObserver(never)

	err := s.Append(context.Background(), addition(1, 2))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, s.Len())
}

func TestTolerant_SwallowsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failing := mocks.NewMockObserver(ctrl)
	next := mocks.NewMockObserver(ctrl)
	gomock.InOrder(
		failing.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("db down")),
		next.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil),
	)

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	s := NewStore(newTestLogger())
	s.AddObserver(Tolerant(failing, log))
	s.AddObserver(next)

	require.NoError(t, s.Append(context.Background(), addition(1, 2)))
	assert.Contains(t, buf.String(), "db down")
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	err := LogObserver(log).Update(context.Background(), addition(2, 3))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "observer: new calculation added")
	assert.Contains(t, buf.String(), `calculation="Calculation(2, addition, 3)"`)
}

func TestStore_ConcurrentAppend(t *testing.T) {
	s := NewStore(newTestLogger())
	var notified sync.WaitGroup
	var mu sync.Mutex
	seen := 0
	s.AddObserver(ObserverFunc(func(context.Context, domain.Calculation) error {
		mu.Lock()
		seen++
		mu.Unlock()
		return nil
	}))

	const n = 50
	notified.Add(n)
	for i := 0; i < n; i++ {
		go func(i int64) {
			defer notified.Done()
			_ = s.Append(context.Background(), addition(i, i))
			_ = s.List()
		}(int64(i))
	}
	notified.Wait()

	assert.Equal(t, n, s.Len())
	assert.Equal(t, n, seen)
}
