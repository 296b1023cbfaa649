package stream

import (
	"context"
	"io"
	"log/slog"
	"math"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riaaa16/advanced-calc/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func calc(s domain.Strategy, a, b int64) domain.Calculation {
	return domain.NewCalculation(domain.NewOperation(s, newTestLogger()), domain.Int(a), domain.Int(b))
}

func TestHub_SubscribeUpdate(t *testing.T) {
	h := NewHub(newTestLogger())
	id, events := h.Subscribe()
	assert.Equal(t, 1, h.Subscribers())

	require.NoError(t, h.Update(context.Background(), calc(domain.Addition{}, 2, 3)))

	rec := <-events
	assert.Equal(t, "addition", rec.Operation)
	assert.Equal(t, 5.0, rec.Result)
	assert.Equal(t, "2 addition 3 = 5", rec.Display)

	h.Unsubscribe(id)
	_, ok := <-events
	assert.False(t, ok)
	assert.Equal(t, 0, h.Subscribers())

	// повторная отписка безопасна
	h.Unsubscribe(id)
}

// Полный буфер не блокирует Update.
func TestHub_Update_DropsWhenFull(t *testing.T) {
	h := NewHub(newTestLogger())
	_, events := h.Subscribe()

	for i := 0; i < bufferSize+10; i++ {
		require.NoError(t, h.Update(context.Background(), calc(domain.Multiplication{}, 2, 2)))
	}
	assert.Len(t, events, bufferSize)
}

func TestHub_ServeWS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHub(newTestLogger())
	r := gin.New()
	r.GET("/stream", h.ServeWS)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, h.Update(context.Background(), calc(domain.Division{}, 5, 0)))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var rec domain.Record
	require.NoError(t, conn.ReadJSON(&rec))
	assert.Equal(t, "division", rec.Operation)
	assert.Equal(t, domain.ErrDivisionByZero.Error(), rec.Message)
	assert.Equal(t, "Calculation(5, division, 0)", rec.Display)

	// бесконечный результат доходит до клиента и не рвёт соединение
	overflow := domain.NewCalculation(domain.NewOperation(domain.Multiplication{}, newTestLogger()), domain.Float(1e308), domain.Float(10))
	require.NoError(t, h.Update(context.Background(), overflow))
	require.NoError(t, h.Update(context.Background(), calc(domain.Addition{}, 1, 2)))

	rec = domain.Record{}
	require.NoError(t, conn.ReadJSON(&rec))
	assert.True(t, math.IsInf(rec.Result, 1))
	assert.Equal(t, "1e+308 multiplication 10.0 = inf", rec.Display)

	rec = domain.Record{}
	require.NoError(t, conn.ReadJSON(&rec))
	assert.Equal(t, 3.0, rec.Result)
	assert.Equal(t, 1, h.Subscribers())
}
