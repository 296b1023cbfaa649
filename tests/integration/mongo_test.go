package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/riaaa16/advanced-calc/internal/domain"
	"github.com/riaaa16/advanced-calc/internal/infrastructure/mongo"
)

// setupMongoRepo подключается к тестовой MongoDB и очищает коллекцию журнала.
func setupMongoRepo(t *testing.T) *mongo.JournalRepo {
	t.Helper()
	ctx := context.Background()

	client, err := mongo.New(ctx, &mongo.Config{
		URI:        mongoContainer.URI(),
		Database:   "calculator_test",
		Collection: "calculations",
	})
	require.NoError(t, err, "не удалось подключиться к MongoDB")
	t.Cleanup(func() { client.Close() })

	if err := client.Coll().Drop(ctx); err != nil {
		t.Logf("drop collection: %v (игнорируем)", err)
	}
	return mongo.NewJournalRepo(client, newTestLogger())
}

func TestMongoRepo_SaveAndGetJournal(t *testing.T) {
	skipShort(t)

	repo := setupMongoRepo(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Millisecond)
	older := domain.Record{Number1: 10, Number2: 5, Operation: "subtraction", Result: 5, Display: "10 subtraction 5 = 5", Timestamp: now.Add(-time.Second)}
	newer := domain.Record{Number1: 1, Number2: 0, Operation: "division", Message: domain.ErrDivisionByZero.Error(), Display: "Calculation(1, division, 0)", Timestamp: now}

	require.NoError(t, repo.SaveRecord(ctx, older))
	require.NoError(t, repo.SaveRecord(ctx, newer))

	journal, err := repo.GetJournal(ctx)
	require.NoError(t, err)
	require.Len(t, journal, 2)

	assert.Equal(t, "division", journal[0].Operation, "последние сначала")
	assert.Equal(t, newer.Message, journal[0].Message)
	assert.Equal(t, newer.Display, journal[0].Display)
	assert.True(t, newer.Timestamp.Equal(journal[0].Timestamp))

	assert.Equal(t, "subtraction", journal[1].Operation)
	assert.Equal(t, 5.0, journal[1].Result)
	assert.Empty(t, journal[1].Message)
}

func TestMongoRepo_GetJournal_Empty(t *testing.T) {
	skipShort(t)

	journal, err := setupMongoRepo(t).GetJournal(context.Background())
	require.NoError(t, err)
	assert.Empty(t, journal)
}

func TestMongoRepo_Ping(t *testing.T) {
	skipShort(t)

	assert.NoError(t, setupMongoRepo(t).Ping(context.Background()))
}

func TestMongoClient_EnsureIndexes(t *testing.T) {
	skipShort(t)
	ctx := context.Background()

	client, err := mongo.New(ctx, &mongo.Config{
		URI:        mongoContainer.URI(),
		Database:   "calculator_test",
		Collection: "calculations_indexed",
	})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.EnsureIndexes(ctx))
	require.NoError(t, client.EnsureIndexes(ctx), "повторный вызов не ошибка")

	cursor, err := client.Coll().Indexes().List(ctx)
	require.NoError(t, err)
	var indexes []bson.M
	require.NoError(t, cursor.All(ctx, &indexes))

	names := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		if name, ok := idx["name"].(string); ok {
			names = append(names, name)
		}
	}
	assert.Contains(t, names, "created_at_desc")
}
