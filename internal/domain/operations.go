package domain

// Addition — сложение.
type Addition struct{}

func (Addition) Execute(a, b Number) (Number, error) {
	return add(a, b), nil
}

// Subtraction — вычитание.
type Subtraction struct{}

func (Subtraction) Execute(a, b Number) (Number, error) {
	return sub(a, b), nil
}

// Multiplication — умножение.
type Multiplication struct{}

func (Multiplication) Execute(a, b Number) (Number, error) {
	return mul(a, b), nil
}

// Division — деление, результат всегда дробный. Делитель ровно 0 — ErrDivisionByZero.
type Division struct{}

func (Division) Execute(a, b Number) (Number, error) {
	if b.IsZero() {
		return Number{}, ErrDivisionByZero
	}
	return Float(a.Float64() / b.Float64()), nil
}
