// Package registry — фабрика операций: имя → новый экземпляр domain.Operation.
package registry

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/riaaa16/advanced-calc/internal/domain"
)

// Constructor создаёт стратегию операции.
type Constructor func() domain.Strategy

// Registry сопоставляет имена (без учёта регистра) конструкторам стратегий.
type Registry struct {
	mu      sync.RWMutex
	ctors   map[string]Constructor
	owner   map[string]string   // имя или алиас → основное имя, которому он принадлежит
	aliases map[string][]string // основное имя → его алиасы
	names   []string
	log     *slog.Logger
}

// New создаёт пустой реестр.
func New(log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{
		ctors:   make(map[string]Constructor),
		owner:   make(map[string]string),
		aliases: make(map[string][]string),
		log:     log,
	}
}

// Default — реестр со встроенными операциями add, subtract, multiply, divide
// и алиасами + - * / для клиентов HTTP/gRPC API.
func Default(log *slog.Logger) *Registry {
	r := New(log)
	r.Register("add", func() domain.Strategy { return domain.Addition{} }, "+")
	r.Register("subtract", func() domain.Strategy { return domain.Subtraction{} }, "-")
	r.Register("multiply", func() domain.Strategy { return domain.Multiplication{} }, "*")
	r.Register("divide", func() domain.Strategy { return domain.Division{} }, "/")
	return r
}

// Register добавляет операцию под именем name и необязательными алиасами.
// Повторная регистрация имени заменяет конструктор и набор алиасов целиком:
// старые алиасы, не перехваченные другим именем, удаляются.
func (r *Registry) Register(name string, ctor Constructor, aliases ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalize(name)
	old, registered := r.aliases[key]
	if !registered {
		r.names = append(r.names, key)
	}
	for _, a := range old {
		if r.owner[a] == key {
			delete(r.ctors, a)
			delete(r.owner, a)
		}
	}

	r.ctors[key] = ctor
	r.owner[key] = key
	own := make([]string, 0, len(aliases))
	for _, a := range aliases {
		ak := normalize(a)
		if ak == key {
			continue
		}
		r.ctors[ak] = ctor
		r.owner[ak] = key
		own = append(own, ak)
	}
	r.aliases[key] = own
}

// Resolve возвращает новую операцию по имени. Неизвестное имя — (nil, false), не ошибка.
func (r *Registry) Resolve(name string) (*domain.Operation, bool) {
	r.log.Debug("creating operation", "name", name)

	r.mu.RLock()
	ctor, ok := r.ctors[normalize(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return domain.NewOperation(ctor(), r.log), true
}

// Names — основные имена операций в порядке регистрации (без алиасов).
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
