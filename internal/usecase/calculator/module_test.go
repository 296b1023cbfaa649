package calculator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riaaa16/advanced-calc/internal/domain"
	"github.com/riaaa16/advanced-calc/internal/history"
)

// Общая история: два независимо созданных юзкейса на одном Store видят одно и то же.
func TestNew_SharedHistory(t *testing.T) {
	store := history.NewStore(newTestLogger())
	first := New(store, nil, newTestLogger())
	second := New(store, nil, newTestLogger())
	ctx := context.Background()

	_, err := first.Calculate(ctx, "add", domain.Int(1), domain.Int(2))
	require.NoError(t, err)
	_, err = second.Calculate(ctx, "subtract", domain.Int(5), domain.Int(3))
	require.NoError(t, err)

	assert.Len(t, first.History(ctx), 2)
	assert.Equal(t, first.History(ctx), second.History(ctx))

	second.Clear(ctx)
	assert.Empty(t, first.History(ctx), "очистка через один юзкейс видна другому")
}

// Своя история: записи одного юзкейса не видны другому.
func TestNewWithOwnHistory_Isolated(t *testing.T) {
	first := NewWithOwnHistory(nil, newTestLogger())
	second := NewWithOwnHistory(nil, newTestLogger())
	ctx := context.Background()

	_, err := first.Calculate(ctx, "add", domain.Int(1), domain.Int(2))
	require.NoError(t, err)

	assert.Len(t, first.History(ctx), 1)
	assert.Empty(t, second.History(ctx))
	assert.NotSame(t, first.Store(), second.Store())
}

// Порядок записей = порядок вызовов, как для одного, так и для нескольких юзкейсов.
func TestHistory_Chronological(t *testing.T) {
	store := history.NewStore(newTestLogger())
	a := New(store, nil, newTestLogger())
	b := New(store, nil, newTestLogger())
	ctx := context.Background()

	_, _ = a.Calculate(ctx, "add", domain.Int(1), domain.Int(1))
	_, _ = b.Calculate(ctx, "multiply", domain.Int(2), domain.Int(2))
	_, _ = a.Calculate(ctx, "divide", domain.Int(9), domain.Int(3))

	var got []string
	for _, c := range a.History(ctx) {
		s, err := c.Display()
		require.NoError(t, err)
		got = append(got, s)
	}
	assert.Equal(t, []string{"1 addition 1 = 2", "2 multiplication 2 = 4", "9 division 3 = 3.0"}, got)
}
