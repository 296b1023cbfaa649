package domain

import "errors"

var (
	// ErrUnknownOperation возвращается, когда операция не поддерживается.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrInvalidOperand — хотя бы один из операндов не число (строка, bool, nil, слайс и т.п.).
	ErrInvalidOperand = errors.New("both inputs must be numbers")
	// ErrDivisionByZero — деление на ноль.
	ErrDivisionByZero = errors.New("division by zero is not allowed")
	// ErrJournalDisabled — журнал не настроен (CALCULATOR_JOURNAL_DRIVER=none).
	ErrJournalDisabled = errors.New("journal disabled")
)
