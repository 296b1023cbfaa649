package calculator

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/riaaa16/advanced-calc/internal/domain"
)

// errNotFinite — результат ±Inf или NaN, JSON его не передаст.
var errNotFinite = errors.New("result is not a finite number")

// CalculateRequest — запрос на вычисление (для POST /api/v1/calculate).
// Числа — указатели: иначе required отклоняет ноль.
type CalculateRequest struct {
	Number1   *float64 `json:"number1" binding:"required"`
	Number2   *float64 `json:"number2" binding:"required"`
	Operation string   `json:"operation" binding:"required"`
}

// Validate проверяет запрос после биндинга.
func (r CalculateRequest) Validate() error {
	if strings.TrimSpace(r.Operation) == "" {
		return errors.New("operation is empty")
	}
	return nil
}

// CalculateResponse — ответ с результатом.
type CalculateResponse struct {
	Result  float64 `json:"result"`
	Message string  `json:"message,omitempty"`
}

// HistoryItem — одна запись в истории (для GET /api/v1/history и /journal).
// Числа ±Inf/NaN и результат упавшего вычисления отдаются как null, текст есть в display.
type HistoryItem struct {
	ID        int       `json:"id"`
	Number1   *float64  `json:"number1"`
	Number2   *float64  `json:"number2"`
	Operation string    `json:"operation"`
	Result    *float64  `json:"result"`
	Message   string    `json:"message,omitempty"`
	Display   string    `json:"display"`
	Timestamp time.Time `json:"timestamp"`
}

func newHistoryItem(id int, rec domain.Record) HistoryItem {
	item := HistoryItem{
		ID:        id,
		Number1:   finite(rec.Number1),
		Number2:   finite(rec.Number2),
		Operation: rec.Operation,
		Message:   rec.Message,
		Display:   rec.Display,
		Timestamp: rec.Timestamp,
	}
	if rec.Message == "" {
		item.Result = finite(rec.Result)
	}
	return item
}

// finite возвращает nil для ±Inf и NaN.
func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// HistoryResponse — ответ со списком вычислений.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

// OperationsResponse — доступные операции.
type OperationsResponse struct {
	Operations []string `json:"operations"`
}

// CacheQuery — параметры GET /api/v1/cache.
type CacheQuery struct {
	Number1   *float64 `form:"number1" binding:"required"`
	Number2   *float64 `form:"number2" binding:"required"`
	Operation string   `form:"operation" binding:"required"`
}

// CacheResponse — закэшированный результат.
type CacheResponse struct {
	Key    string   `json:"key"`
	Found  bool     `json:"found"`
	Result *float64 `json:"result,omitempty"`
}

// ErrorResponse — ответ с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}
