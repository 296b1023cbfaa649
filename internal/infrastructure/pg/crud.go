package pg

import (
	"context"
	"log/slog"

	"github.com/riaaa16/advanced-calc/internal/domain"
	"github.com/riaaa16/advanced-calc/internal/ports"
)

var _ ports.IJournalRepository = (*JournalRepo)(nil)

// JournalRepo реализует ports.IJournalRepository для PostgreSQL.
type JournalRepo struct {
	db  *DB
	log *slog.Logger
}

// NewJournalRepo возвращает репозиторий журнала.
func NewJournalRepo(db *DB, log *slog.Logger) *JournalRepo {
	return &JournalRepo{db: db, log: log}
}

// SaveRecord сохраняет запись в БД.
func (r *JournalRepo) SaveRecord(ctx context.Context, rec domain.Record) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO calculations (number1, number2, operation, result, message, display, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.Number1, rec.Number2, rec.Operation, rec.Result, rec.Message, rec.Display, rec.Timestamp)
	if err != nil {
		r.log.Debug("SaveRecord failed", "error", err)
		return err
	}
	return nil
}

// GetJournal возвращает журнал из БД (последние сначала).
func (r *JournalRepo) GetJournal(ctx context.Context) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, number1, number2, operation, result, COALESCE(message, ''), display, created_at
		 FROM calculations ORDER BY created_at DESC, id DESC`)
	if err != nil {
		r.log.Debug("GetJournal failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var list []domain.Record
	for rows.Next() {
		var rec domain.Record
		err := rows.Scan(&rec.ID, &rec.Number1, &rec.Number2, &rec.Operation, &rec.Result, &rec.Message, &rec.Display, &rec.Timestamp)
		if err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *JournalRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
