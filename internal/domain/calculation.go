package domain

import (
	"fmt"
	"time"
)

// Calculation — запись об одном вызове операции. Результат не хранится:
// Display каждый раз заново выполняет операцию, поэтому Calculation с делением на ноль
// создаётся без ошибок, а падает только при выводе.
type Calculation struct {
	Operation *Operation
	Operand1  Number
	Operand2  Number
	CreatedAt time.Time
}

// NewCalculation ничего не проверяет и не вычисляет.
func NewCalculation(op *Operation, a, b Number) Calculation {
	return Calculation{Operation: op, Operand1: a, Operand2: b, CreatedAt: time.Now()}
}

// Result выполняет операцию над операндами.
func (c Calculation) Result() (Number, error) {
	return c.Operation.Calculate(c.Operand1, c.Operand2)
}

// Display — "<a> <kind> <b> = <result>", например "8 division 2 = 4.0".
func (c Calculation) Display() (string, error) {
	result, err := c.Result()
	if err != nil {
		return "", err
	}
	return c.format(result), nil
}

func (c Calculation) format(result Number) string {
	return fmt.Sprintf("%s %s %s = %s", c.Operand1, c.Operation.Kind(), c.Operand2, result)
}

// String — отладочная форма "Calculation(1, addition, 2)", операцию не выполняет.
func (c Calculation) String() string {
	return fmt.Sprintf("Calculation(%s, %s, %s)", c.Operand1, c.Operation.Kind(), c.Operand2)
}
