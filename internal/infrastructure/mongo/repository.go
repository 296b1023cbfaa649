package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/riaaa16/advanced-calc/internal/domain"
	"github.com/riaaa16/advanced-calc/internal/ports"
)

var _ ports.IJournalRepository = (*JournalRepo)(nil)

// recordDoc — документ в коллекции calculations. ObjectID в домен не переносим, ID остаётся 0.
type recordDoc struct {
	Number1   float64   `bson:"number1"`
	Number2   float64   `bson:"number2"`
	Operation string    `bson:"operation"`
	Result    float64   `bson:"result"`
	Message   string    `bson:"message,omitempty"`
	Display   string    `bson:"display"`
	CreatedAt time.Time `bson:"created_at"`
}

// JournalRepo реализует ports.IJournalRepository для MongoDB.
type JournalRepo struct {
	client *Client
	log    *slog.Logger
}

// NewJournalRepo возвращает репозиторий журнала.
func NewJournalRepo(client *Client, log *slog.Logger) *JournalRepo {
	return &JournalRepo{client: client, log: log}
}

// SaveRecord сохраняет запись в коллекцию.
func (r *JournalRepo) SaveRecord(ctx context.Context, rec domain.Record) error {
	doc := recordDoc{
		Number1:   rec.Number1,
		Number2:   rec.Number2,
		Operation: rec.Operation,
		Result:    rec.Result,
		Message:   rec.Message,
		Display:   rec.Display,
		CreatedAt: rec.Timestamp,
	}
	if _, err := r.client.Coll().InsertOne(ctx, doc); err != nil {
		r.log.Debug("SaveRecord failed", "error", err)
		return err
	}
	return nil
}

// GetJournal возвращает журнал (последние сначала).
func (r *JournalRepo) GetJournal(ctx context.Context) ([]domain.Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.client.Coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Debug("GetJournal failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []recordDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Record, 0, len(docs))
	for _, d := range docs {
		list = append(list, domain.Record{
			Number1:   d.Number1,
			Number2:   d.Number2,
			Operation: d.Operation,
			Result:    d.Result,
			Message:   d.Message,
			Display:   d.Display,
			Timestamp: d.CreatedAt,
		})
	}
	return list, nil
}

// Ping проверяет доступность БД.
func (r *JournalRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}
