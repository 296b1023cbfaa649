package click

import (
	"context"
	"fmt"

	"github.com/riaaa16/advanced-calc/internal/domain"
	"github.com/riaaa16/advanced-calc/internal/ports"
)

var _ ports.IRecordAnalytics = (*RecordWriter)(nil)

const analyticsTable = "calculations_analytics"

// RecordWriter записывает вычисления в ClickHouse в формате, удобном для аналитики (GROUP BY operation, по времени и т.д.).
type RecordWriter struct {
	db    *Client
	table string
}

// NewRecordWriter создаёт писатель вычислений для аналитики.
func NewRecordWriter(db *Client) *RecordWriter {
	return &RecordWriter{db: db, table: db.Table(analyticsTable)}
}

// Table — полное имя таблицы (database.table).
func (w *RecordWriter) Table() string {
	return w.table
}

// EnsureTable создаёт таблицу аналитики, если её ещё нет. Вызови один раз при старте приложения.
func (w *RecordWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			number1 Float64,
			number2 Float64,
			operation LowCardinality(String),
			result Float64,
			failed UInt8,
			message String,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		PARTITION BY toYYYYMM(created_at)
		ORDER BY (created_at, operation)`,
		w.table,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteRecord реализует ports.IRecordAnalytics: пишет одну запись в ClickHouse.
func (w *RecordWriter) WriteRecord(ctx context.Context, rec domain.Record) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (number1, number2, operation, result, failed, message, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		w.table,
	)
	var failed uint8
	if rec.Message != "" {
		failed = 1
	}
	_, err := w.db.DB().ExecContext(ctx, query,
		rec.Number1, rec.Number2, rec.Operation, rec.Result, failed, rec.Message, rec.Timestamp)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// CountByOperation — число записей по видам операций.
func (w *RecordWriter) CountByOperation(ctx context.Context) (map[string]uint64, error) {
	rows, err := w.db.DB().QueryContext(ctx,
		fmt.Sprintf("SELECT operation, count() FROM %s GROUP BY operation", w.table))
	if err != nil {
		return nil, fmt.Errorf("count by operation: %w", err)
	}
	defer rows.Close()
	out := make(map[string]uint64)
	for rows.Next() {
		var op string
		var n uint64
		if err := rows.Scan(&op, &n); err != nil {
			return nil, err
		}
		out[op] = n
	}
	return out, rows.Err()
}
