package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apigrpc "github.com/riaaa16/advanced-calc/internal/api/grpc"
	apihttp "github.com/riaaa16/advanced-calc/internal/api/http"
	"github.com/riaaa16/advanced-calc/internal/infrastructure/click"
	"github.com/riaaa16/advanced-calc/internal/infrastructure/kafka"
	"github.com/riaaa16/advanced-calc/internal/infrastructure/mongo"
	"github.com/riaaa16/advanced-calc/internal/infrastructure/pg"
	"github.com/riaaa16/advanced-calc/internal/infrastructure/redis"
	"github.com/riaaa16/advanced-calc/internal/pkg/logger"
)

const AppName = "CALCULATOR"

// Драйверы журнала (CALCULATOR_JOURNAL_DRIVER).
const (
	JournalNone  = "none"
	JournalPG    = "pg"
	JournalMongo = "mongo"
)

// JournalConfig — куда писать журнал вычислений. Переменная: CALCULATOR_JOURNAL_DRIVER.
type JournalConfig struct {
	Driver string `envconfig:"DRIVER" default:"none"`
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом CALCULATOR.
// По умолчанию вся инфраструктура выключена: REPL работает без внешних сервисов.
type Config struct {
	Log        logger.Config        `envconfig:"LOG"`
	Server     apihttp.ServerConfig `envconfig:"SERVER"`
	Grpc       apigrpc.Config       `envconfig:"GRPC"`
	Journal    JournalConfig        `envconfig:"JOURNAL"`
	DB         pg.Config            `envconfig:"DB"`
	Mongo      mongo.Config         `envconfig:"MONGO"`
	Redis      redis.Config         `envconfig:"REDIS"`
	Kafka      kafka.Config         `envconfig:"KAFKA"`
	ClickHouse click.Config         `envconfig:"CLICKHOUSE"`
}

// Validate проверяет значения, которые envconfig не проверяет сам.
func (c Config) Validate() error {
	var errs []error
	switch c.Journal.Driver {
	case JournalNone:
	case JournalPG:
		errs = append(errs, c.DB.Validate())
	case JournalMongo:
		errs = append(errs, c.Mongo.Validate())
	default:
		return fmt.Errorf("unknown journal driver %q (want none, pg or mongo)", c.Journal.Driver)
	}
	if c.ClickHouse.Enabled && !c.Kafka.Enabled {
		return fmt.Errorf("clickhouse analytics needs kafka: set %s_KAFKA_ENABLED=true", AppName)
	}
	errs = append(errs, c.Redis.Validate(), c.Kafka.Validate(), c.ClickHouse.Validate())
	return errors.Join(errs...)
}

// LoadCfg загружает конфиг: подтягивает envFile (godotenv), затем заполняет структуру из окружения (envconfig).
// Отсутствие файла не ошибка.
func LoadCfg(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			slog.Debug("config: env file not loaded, using environment", "file", envFile, "error", err)
		}
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
