package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	apigrpc "github.com/riaaa16/advanced-calc/internal/api/grpc"
	apihttp "github.com/riaaa16/advanced-calc/internal/api/http"
	calcController "github.com/riaaa16/advanced-calc/internal/api/http/controllers/calculator"
	"github.com/riaaa16/advanced-calc/internal/api/http/controllers/system"
	"github.com/riaaa16/advanced-calc/internal/api/http/stream"
	"github.com/riaaa16/advanced-calc/internal/history"
	"github.com/riaaa16/advanced-calc/internal/infrastructure/click"
	"github.com/riaaa16/advanced-calc/internal/infrastructure/kafka"
	"github.com/riaaa16/advanced-calc/internal/infrastructure/mongo"
	"github.com/riaaa16/advanced-calc/internal/infrastructure/pg"
	"github.com/riaaa16/advanced-calc/internal/infrastructure/redis"
	"github.com/riaaa16/advanced-calc/internal/pkg/logger"
	"github.com/riaaa16/advanced-calc/internal/pkg/metrics"
	"github.com/riaaa16/advanced-calc/internal/ports"
	"github.com/riaaa16/advanced-calc/internal/registry"
	"github.com/riaaa16/advanced-calc/internal/repl"
	calcUsecase "github.com/riaaa16/advanced-calc/internal/usecase/calculator"
	"github.com/riaaa16/advanced-calc/internal/usecase/journal"
)

// App — приложение: конфиг, логгер и открытые ресурсы (закрываются в Close).
type App struct {
	cfg     Config
	log     *slog.Logger
	closers []func() error
}

// New создаёт приложение с конфигом и настраивает логгер. Инфраструктура подключается в RunREPL/Serve.
func New(cfg Config) *App {
	return &App{cfg: cfg, log: logger.Setup(cfg.Log)}
}

// core — общая история, юзкейс поверх неё и всё, что на неё подписано.
type core struct {
	store    *history.Store
	uc       *calcUsecase.UseCase
	recorder *journal.Recorder
	checks   map[string]ports.IHealthChecker
}

// buildCore создаёт одну общую историю, наблюдателей (лог, метрики, журнал) и юзкейс.
func (a *App) buildCore(ctx context.Context) (*core, error) {
	store := history.NewStore(a.log)
	store.AddObserver(history.LogObserver(a.log))

	if m, err := metrics.NewObserver(nil); err != nil {
		a.log.Warn("metrics observer not registered", "error", err)
	} else {
		store.AddObserver(m)
	}

	checks := make(map[string]ports.IHealthChecker)
	recorder, attached, err := a.buildRecorder(ctx, checks)
	if err != nil {
		return nil, err
	}
	// Инфраструктура не должна ломать вычисления: её ошибки только логируются.
	if attached {
		store.AddObserver(history.Tolerant(recorder, a.log))
	}

	uc := calcUsecase.New(store, registry.Default(a.log), a.log)
	return &core{store: store, uc: uc, recorder: recorder, checks: checks}, nil
}

// buildRecorder подключает журнал, кэш и брокер по конфигу. attached == false — ни одного приёмника нет.
// Интерфейсы остаются nil (без типа), если приёмник выключен.
func (a *App) buildRecorder(ctx context.Context, checks map[string]ports.IHealthChecker) (*journal.Recorder, bool, error) {
	var (
		repo   ports.IJournalRepository
		cache  ports.ICache
		broker ports.IProducer
	)

	switch a.cfg.Journal.Driver {
	case JournalPG:
		db, err := pg.New(ctx, &a.cfg.DB)
		if err != nil {
			return nil, false, fmt.Errorf("db: %w", err)
		}
		a.onClose(db.Close)
		if err := pg.Migrate(ctx, db); err != nil {
			return nil, false, fmt.Errorf("migrate: %w", err)
		}
		repo = pg.NewJournalRepo(db, a.log)
	case JournalMongo:
		client, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, false, fmt.Errorf("mongo: %w", err)
		}
		a.onClose(client.Close)
		if err := client.EnsureIndexes(ctx); err != nil {
			return nil, false, err
		}
		repo = mongo.NewJournalRepo(client, a.log)
	}

	if a.cfg.Redis.Enabled {
		rdb, err := redis.New(ctx, &a.cfg.Redis)
		if err != nil {
			return nil, false, fmt.Errorf("redis: %w", err)
		}
		a.onClose(rdb.Close)
		cache = redis.NewCache(rdb, a.log)
		checks["redis"] = rdb
	}

	if a.cfg.Kafka.Enabled {
		producer := kafka.NewProducer(&a.cfg.Kafka)
		a.onClose(producer.Close)
		broker = producer
	}

	recorder := journal.NewRecorder(repo, cache, broker, a.log)
	if repo != nil {
		checks["journal"] = recorder
	}
	return recorder, repo != nil || cache != nil || broker != nil, nil
}

// RunREPL запускает интерактивный калькулятор на in/out (блокирующий вызов).
func (a *App) RunREPL(ctx context.Context, in io.Reader, out io.Writer) error {
	defer a.Close()

	c, err := a.buildCore(ctx)
	if err != nil {
		return err
	}
	a.log.Info("repl started", "journal", a.cfg.Journal.Driver)
	return repl.New(c.uc, in, out, a.log).Run(ctx)
}

// Serve поднимает HTTP, gRPC и консьюмер аналитики и блокируется до SIGINT/SIGTERM или отмены ctx.
// Падение HTTP или gRPC останавливает всё остальное.
func (a *App) Serve(ctx context.Context) error {
	defer a.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := a.buildCore(ctx)
	if err != nil {
		return err
	}

	hub := stream.NewHub(a.log)
	c.store.AddObserver(hub)

	var consumer *kafka.Consumer
	if a.cfg.ClickHouse.Enabled {
		if consumer, err = a.buildAnalytics(ctx, c.checks); err != nil {
			return err
		}
	}

	grpcSrv := apigrpc.NewServer(a.cfg.Grpc, c.uc, a.log)
	srv := apihttp.NewServer(a.cfg.Server, a.log)
	srv.AddController(
		system.New(c.checks, a.log),
		calcController.New(c.uc, c.recorder, hub.ServeWS, a.log))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	g.Go(grpcSrv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return grpcSrv.Stop(shutdownCtx)
	})
	if consumer != nil {
		g.Go(func() error {
			if err := consumer.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				a.log.Error("analytics consumer stopped", "error", err)
			}
			return nil
		})
	}

	a.log.Info("application started", "http", a.cfg.Server.Addr(), "grpc", a.cfg.Grpc.Addr())
	return g.Wait()
}

// buildAnalytics подключает ClickHouse и создаёт консьюмер топика вычислений, который пишет в аналитику.
func (a *App) buildAnalytics(ctx context.Context, checks map[string]ports.IHealthChecker) (*kafka.Consumer, error) {
	ch, err := click.New(ctx, &a.cfg.ClickHouse)
	if err != nil {
		return nil, fmt.Errorf("clickhouse: %w", err)
	}
	a.onClose(ch.Close)
	checks["clickhouse"] = ch

	writer := click.NewRecordWriter(ch)
	if err := writer.EnsureTable(ctx); err != nil {
		return nil, fmt.Errorf("clickhouse table: %w", err)
	}

	consumer := kafka.NewConsumer(&a.cfg.Kafka, journal.NewProjector(writer, a.log), a.log)
	a.onClose(consumer.Close)
	a.log.Info("analytics consumer ready", "topic", a.cfg.Kafka.Topic, "table", writer.Table())
	return consumer, nil
}

func (a *App) onClose(f func() error) {
	a.closers = append(a.closers, f)
}

// Close закрывает открытые ресурсы в обратном порядке.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
