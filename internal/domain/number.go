package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number — операнд или результат операции. Помнит, целое оно или дробное:
// 1 + 2 даёт 3, а 8 / 2 даёт 4.0. Целые хранятся в int64 без потери точности.
type Number struct {
	i       int64
	f       float64
	integer bool
}

// Int создаёт целое число.
func Int(v int64) Number {
	return Number{i: v, integer: true}
}

// Float создаёт дробное число.
func Float(v float64) Number {
	return Number{f: v}
}

// Float64 возвращает значение как float64. Целые больше 2^53 при этом округляются.
func (n Number) Float64() float64 {
	if n.integer {
		return float64(n.i)
	}
	return n.f
}

// Int64 возвращает целое значение. ok == false для дробных чисел.
func (n Number) Int64() (v int64, ok bool) {
	return n.i, n.integer
}

// IsInteger сообщает, целое ли число.
func (n Number) IsInteger() bool {
	return n.integer
}

// IsZero — ровно ноль (в том числе -0.0).
func (n Number) IsZero() bool {
	if n.integer {
		return n.i == 0
	}
	return n.f == 0
}

// IsFinite — не ±Inf и не NaN. Целые всегда конечны.
func (n Number) IsFinite() bool {
	return n.integer || !(math.IsInf(n.f, 0) || math.IsNaN(n.f))
}

// String форматирует число: целые без дробной части, дробные минимум с одним знаком после точки.
func (n Number) String() string {
	if n.integer {
		return strconv.FormatInt(n.i, 10)
	}
	return formatFloat(n.f)
}

func formatFloat(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// nonFinite — текстовая форма ±Inf и NaN.
func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "nan", true
	case math.IsInf(v, 1):
		return "inf", true
	case math.IsInf(v, -1):
		return "-inf", true
	}
	return "", false
}

// Целая арифметика идёт в int64. При переполнении результат становится дробным.

func add(a, b Number) Number {
	if a.integer && b.integer {
		s := a.i + b.i
		if (a.i^s)&(b.i^s) >= 0 {
			return Int(s)
		}
	}
	return Float(a.Float64() + b.Float64())
}

func sub(a, b Number) Number {
	if a.integer && b.integer {
		d := a.i - b.i
		if (a.i^b.i)&(a.i^d) >= 0 {
			return Int(d)
		}
	}
	return Float(a.Float64() - b.Float64())
}

func mul(a, b Number) Number {
	if a.integer && b.integer {
		if p, ok := mulInt64(a.i, b.i); ok {
			return Int(p)
		}
	}
	return Float(a.Float64() * b.Float64())
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	return p, p/b == a
}

// ToNumber приводит значение к Number. Принимает целые и дробные типы Go и сам Number;
// bool, nil, строки, слайсы, мапы и прочее — ErrInvalidOperand.
// uint и uint64 больше math.MaxInt64 становятся дробными.
func ToNumber(v any) (Number, error) {
	switch x := v.(type) {
	case Number:
		return x, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint64(uint64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return fromUint64(x), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	default:
		return Number{}, fmt.Errorf("%w: %v (%T)", ErrInvalidOperand, v, v)
	}
}

func fromUint64(x uint64) Number {
	if x > math.MaxInt64 {
		return Float(float64(x))
	}
	return Int(int64(x))
}

// ParseNumber разбирает токен ввода как дробное число (как float() в REPL).
func ParseNumber(s string) (Number, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Number{}, fmt.Errorf("%w: %q", ErrInvalidOperand, s)
	}
	return Float(v), nil
}
