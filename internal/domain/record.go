package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Record — плоская запись о вычислении для журнала, брокера и аналитики.
// Message пустой при успехе и содержит текст ошибки, если вычисление упало.
// В JSON ±Inf и NaN пишутся строками "inf", "-inf", "nan".
type Record struct {
	ID        int
	Number1   float64
	Number2   float64
	Operation string
	Result    float64
	Message   string
	Display   string
	Timestamp time.Time
}

// NewRecord вычисляет Calculation и раскладывает её в Record.
func NewRecord(c Calculation) Record {
	rec := Record{
		Number1:   c.Operand1.Float64(),
		Number2:   c.Operand2.Float64(),
		Operation: c.Operation.Kind(),
		Timestamp: c.CreatedAt,
	}
	result, err := c.Result()
	if err != nil {
		rec.Message = err.Error()
		rec.Display = c.String()
		return rec
	}
	rec.Result = result.Float64()
	rec.Display = c.format(result)
	return rec
}

// Key — читаемый ключ операции, например "10 addition 5".
func (r Record) Key() string {
	return strconv.FormatFloat(r.Number1, 'f', -1, 64) + " " + r.Operation + " " + strconv.FormatFloat(r.Number2, 'f', -1, 64)
}

type recordJSON struct {
	ID        int       `json:"id"`
	Number1   jsonFloat `json:"number1"`
	Number2   jsonFloat `json:"number2"`
	Operation string    `json:"operation"`
	Result    jsonFloat `json:"result"`
	Message   string    `json:"message"`
	Display   string    `json:"display"`
	Timestamp time.Time `json:"timestamp"`
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		ID:        r.ID,
		Number1:   jsonFloat(r.Number1),
		Number2:   jsonFloat(r.Number2),
		Operation: r.Operation,
		Result:    jsonFloat(r.Result),
		Message:   r.Message,
		Display:   r.Display,
		Timestamp: r.Timestamp,
	})
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var w recordJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = Record{
		ID:        w.ID,
		Number1:   float64(w.Number1),
		Number2:   float64(w.Number2),
		Operation: w.Operation,
		Result:    float64(w.Result),
		Message:   w.Message,
		Display:   w.Display,
		Timestamp: w.Timestamp,
	}
	return nil
}

// jsonFloat — float64, который переживает JSON вместе с ±Inf и NaN.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	if s, ok := nonFinite(float64(f)); ok {
		return strconv.AppendQuote(nil, s), nil
	}
	return json.Marshal(float64(f))
}

func (f *jsonFloat) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || data[0] != '"' {
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = jsonFloat(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "inf":
		*f = jsonFloat(math.Inf(1))
	case "-inf":
		*f = jsonFloat(math.Inf(-1))
	case "nan":
		*f = jsonFloat(math.NaN())
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOperand, s)
	}
	return nil
}
