// Package stream — рассылка новых вычислений по websocket.
package stream

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/riaaa16/advanced-calc/internal/domain"
	"github.com/riaaa16/advanced-calc/internal/history"
)

const bufferSize = 100

var _ history.Observer = (*Hub)(nil)

// Hub — наблюдатель истории: каждое новое вычисление рассылается подписчикам.
// Медленный подписчик с полным буфером пропускает события.
type Hub struct {
	mu       sync.RWMutex
	nextID   int
	subs     map[int]chan domain.Record
	upgrader websocket.Upgrader
	log      *slog.Logger
}

// NewHub создаёт пустой хаб.
func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		subs: make(map[int]chan domain.Record),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// Subscribe регистрирует подписчика и возвращает его id и канал событий.
func (h *Hub) Subscribe() (int, <-chan domain.Record) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	ch := make(chan domain.Record, bufferSize)
	h.subs[h.nextID] = ch
	return h.nextID, ch
}

// Unsubscribe снимает подписку и закрывает канал.
func (h *Hub) Unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.subs[id]; ok {
		close(ch)
		delete(h.subs, id)
	}
}

// Subscribers — число активных подписчиков.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Update реализует history.Observer.
func (h *Hub) Update(_ context.Context, c domain.Calculation) error {
	rec := domain.NewRecord(c)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, ch := range h.subs {
		select {
		case ch <- rec:
		default:
			h.log.Warn("stream subscriber lagging, event dropped", "subscriber", id)
		}
	}
	return nil
}

// ServeWS — обработчик GET /api/v1/history/stream: апгрейд до websocket и отправка записей в JSON.
func (h *Hub) ServeWS(ctx *gin.Context) {
	id, events := h.Subscribe()
	defer h.Unsubscribe(id)

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	h.log.Info("stream subscriber connected", "subscriber", id)

	// Входящие сообщения не нужны, читаем только чтобы заметить закрытие.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case rec, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(rec); err != nil {
				h.log.Debug("stream write failed", "subscriber", id, "error", err)
				return
			}
		case <-closed:
			h.log.Info("stream subscriber disconnected", "subscriber", id)
			return
		case <-ctx.Request.Context().Done():
			return
		}
	}
}
