// Package integration содержит интеграционные тесты с реальной инфраструктурой
// (PostgreSQL, MongoDB, Redis, ClickHouse). Контейнеры поднимает testcontainers.
//
// Запуск:
//
//	go test ./tests/integration/... -v
//
// Пропуск (только юнит-тесты, Docker не нужен):
//
//	go test ./... -short
package integration

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/riaaa16/advanced-calc/tests/integration/testutil"
)

var (
	pgContainer    *testutil.PostgresContainer
	redisContainer *testutil.RedisContainer
	mongoContainer *testutil.MongoContainer
	clickContainer *testutil.ClickHouseContainer
)

// TestMain поднимает контейнеры один раз перед всеми тестами пакета и останавливает после.
// В -short режиме контейнеры не поднимаются, тесты пропускаются сами.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var (
		started []func() error
		err     error
	)
	fail := func(name string, err error) {
		for _, stop := range started {
			_ = stop()
		}
		log.Fatalf("не удалось поднять %s: %v", name, err)
	}

	if pgContainer, err = testutil.NewPostgresContainer(ctx); err != nil {
		fail("PostgreSQL", err)
	}
	started = append(started, func() error { return pgContainer.Terminate(ctx) })
	log.Printf("PostgreSQL: %s", pgContainer.Addr())

	if redisContainer, err = testutil.NewRedisContainer(ctx); err != nil {
		fail("Redis", err)
	}
	started = append(started, func() error { return redisContainer.Terminate(ctx) })
	log.Printf("Redis: %s", redisContainer.Addr())

	if mongoContainer, err = testutil.NewMongoContainer(ctx); err != nil {
		fail("MongoDB", err)
	}
	started = append(started, func() error { return mongoContainer.Terminate(ctx) })
	log.Printf("MongoDB: %s", mongoContainer.Addr())

	if clickContainer, err = testutil.NewClickHouseContainer(ctx); err != nil {
		fail("ClickHouse", err)
	}
	started = append(started, func() error { return clickContainer.Terminate(ctx) })
	log.Printf("ClickHouse: %s", clickContainer.Addr())

	code := m.Run()

	for _, stop := range started {
		if err := stop(); err != nil {
			log.Printf("ошибка остановки контейнера: %v", err)
		}
	}
	os.Exit(code)
}

func skipShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
