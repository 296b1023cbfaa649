// Package repl — интерактивный цикл калькулятора: читает команды построчно и печатает ответы.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/riaaa16/advanced-calc/internal/domain"
	"github.com/riaaa16/advanced-calc/internal/ports"
)

const (
	welcome       = "Welcome to the OOP Calculator! Type 'help' for available commands."
	prompt        = "Enter an operation and two numbers, or a command: "
	emptyHistory  = "No calculations in history."
	historyClear  = "History cleared."
	exiting       = "Exiting calculator..."
	invalidInput  = "Invalid input. Please enter a valid operation and two numbers. Type 'help' for instructions."
	unknownFormat = "Unknown operation '%s'. Type 'help' for available commands."
)

const helpText = `
Available commands:
  add <num1> <num2>       : Add two numbers.
  subtract <num1> <num2>  : Subtract the second number from the first.
  multiply <num1> <num2>  : Multiply two numbers.
  divide <num1> <num2>    : Divide the first number by the second.
  list                    : Show the calculation history.
  clear                   : Clear the calculation history.
  exit                    : Exit the calculator.
`

// REPL — цикл чтения команд поверх юзкейса калькулятора.
type REPL struct {
	uc  ports.ICalculatorUseCase
	in  io.Reader
	out io.Writer
	log *slog.Logger
}

// New создаёт REPL. Команды читаются из in, ответы пишутся в out.
func New(uc ports.ICalculatorUseCase, in io.Reader, out io.Writer, log *slog.Logger) *REPL {
	if log == nil {
		log = slog.Default()
	}
	return &REPL{uc: uc, in: in, out: out, log: log}
}

// Run крутит цикл до команды exit, конца ввода или отмены ctx.
func (r *REPL) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.in)
	r.println(welcome)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(r.out, prompt)
		if !scanner.Scan() {
			r.println("")
			return scanner.Err()
		}
		if !r.handle(ctx, scanner.Text()) {
			return nil
		}
	}
}

// handle выполняет одну строку. false — пора выходить.
func (r *REPL) handle(ctx context.Context, line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "help":
		r.println(helpText)
		return true
	case "exit":
		r.println(exiting)
		return false
	case "list":
		r.list(ctx)
		return true
	case "clear":
		r.uc.Clear(ctx)
		r.println(historyClear)
		return true
	}
	r.calculate(ctx, line)
	return true
}

func (r *REPL) list(ctx context.Context) {
	items := r.uc.History(ctx)
	if len(items) == 0 {
		r.println(emptyHistory)
		return
	}
	for _, c := range items {
		s, err := c.Display()
		if err != nil {
			r.println("Error: " + err.Error())
			continue
		}
		r.println(s)
	}
}

func (r *REPL) calculate(ctx context.Context, line string) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		r.log.Error("invalid input", "input", line, "error", "expected operation and two numbers")
		r.println(invalidInput)
		return
	}
	a, err := domain.ParseNumber(fields[1])
	if err != nil {
		r.log.Error("invalid input", "input", line, "error", err)
		r.println(invalidInput)
		return
	}
	b, err := domain.ParseNumber(fields[2])
	if err != nil {
		r.log.Error("invalid input", "input", line, "error", err)
		r.println(invalidInput)
		return
	}

	result, err := r.uc.Calculate(ctx, fields[0], a, b)
	switch {
	case errors.Is(err, domain.ErrUnknownOperation):
		r.println(fmt.Sprintf(unknownFormat, fields[0]))
	case err != nil:
		r.println("Error: " + err.Error())
	default:
		r.println("Result: " + result.String())
	}
}

func (r *REPL) println(s string) {
	fmt.Fprintln(r.out, s)
}
