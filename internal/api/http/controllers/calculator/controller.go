package calculator

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/riaaa16/advanced-calc/internal/domain"
	"github.com/riaaa16/advanced-calc/internal/ports"
)

// Controller — маршруты калькулятора: calculate, history, operations, journal, cache, stream.
type Controller struct {
	uc      ports.ICalculatorUseCase
	journal ports.IJournalReader
	stream  gin.HandlerFunc
	log     *slog.Logger
}

// New создаёт контроллер калькулятора. journal и stream могут быть nil — тогда их маршруты не регистрируются.
func New(uc ports.ICalculatorUseCase, journal ports.IJournalReader, stream gin.HandlerFunc, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{uc: uc, journal: journal, stream: stream, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/calculate", c.calculate)
	api.GET("/history", c.history)
	api.DELETE("/history", c.clear)
	api.GET("/operations", c.operations)
	if c.journal != nil {
		api.GET("/journal", c.journalList)
		api.GET("/cache", c.cached)
	}
	if c.stream != nil {
		api.GET("/history/stream", c.stream)
	}
}

// badRequest — ошибки ввода, которые отдаются клиенту как 400.
func badRequest(err error) bool {
	return errors.Is(err, domain.ErrUnknownOperation) ||
		errors.Is(err, domain.ErrInvalidOperand) ||
		errors.Is(err, domain.ErrDivisionByZero)
}

// @Summary Выполнить вычисление
// @Description Принимает два числа и операцию (add, subtract, multiply, divide или + - * /), возвращает результат. Вычисление попадает в историю.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Параметры вычисления"
// @Success 200 {object} CalculateResponse "Результат вычисления"
// @Failure 400 {object} CalculateResponse "Невалидный запрос, неизвестная операция, деление на ноль или бесконечный результат"
// @Failure 500 {object} CalculateResponse "Внутренняя ошибка сервера"
// @Router /api/v1/calculate [post]
func (c *Controller) calculate(ctx *gin.Context) {
	var req CalculateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("calculate bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, CalculateResponse{Message: "invalid request: " + err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.log.Warn("calculate validation failed", "error", err)
		ctx.JSON(http.StatusBadRequest, CalculateResponse{Message: err.Error()})
		return
	}

	result, err := c.uc.Calculate(ctx.Request.Context(), req.Operation, domain.Float(*req.Number1), domain.Float(*req.Number2))
	if err != nil {
		if badRequest(err) {
			c.log.Warn("calculate rejected", "error", err)
			ctx.JSON(http.StatusBadRequest, CalculateResponse{Message: err.Error()})
			return
		}
		c.log.Error("calculate failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, CalculateResponse{Message: err.Error()})
		return
	}
	if !result.IsFinite() {
		// вычисление уже в истории, там оно видно через display
		c.log.Warn("calculate rejected", "result", result.String(), "error", errNotFinite)
		ctx.JSON(http.StatusBadRequest, CalculateResponse{Message: errNotFinite.Error() + ": " + result.String()})
		return
	}
	ctx.JSON(http.StatusOK, CalculateResponse{Result: result.Float64()})
}

// @Summary Получить историю вычислений
// @Description Возвращает историю текущего процесса в порядке добавления
// @Tags calculator
// @Produce json
// @Success 200 {object} HistoryResponse "Список вычислений"
// @Router /api/v1/history [get]
func (c *Controller) history(ctx *gin.Context) {
	list := c.uc.History(ctx.Request.Context())
	items := make([]HistoryItem, len(list))
	for i, calc := range list {
		items[i] = newHistoryItem(i+1, domain.NewRecord(calc))
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}

// @Summary Очистить историю
// @Tags calculator
// @Success 204
// @Router /api/v1/history [delete]
func (c *Controller) clear(ctx *gin.Context) {
	c.uc.Clear(ctx.Request.Context())
	ctx.Status(http.StatusNoContent)
}

// @Summary Доступные операции
// @Tags calculator
// @Produce json
// @Success 200 {object} OperationsResponse
// @Router /api/v1/operations [get]
func (c *Controller) operations(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, OperationsResponse{Operations: c.uc.Operations()})
}

// @Summary Журнал вычислений
// @Description Записи из БД журнала (последние сначала). 404, если журнал не настроен.
// @Tags journal
// @Produce json
// @Success 200 {object} HistoryResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/journal [get]
func (c *Controller) journalList(ctx *gin.Context) {
	list, err := c.journal.Journal(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrJournalDisabled) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.log.Error("journal failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	items := make([]HistoryItem, len(list))
	for i, rec := range list {
		items[i] = newHistoryItem(rec.ID, rec)
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}

// @Summary Закэшированный результат
// @Description Последний результат по ключу "<number1> <operation> <number2>", operation — вид операции (addition, division, ...).
// @Tags journal
// @Produce json
// @Param number1 query number true "Первое число"
// @Param operation query string true "Вид операции"
// @Param number2 query number true "Второе число"
// @Success 200 {object} CacheResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/cache [get]
func (c *Controller) cached(ctx *gin.Context) {
	var q CacheQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}
	key := domain.Record{
		Number1:   *q.Number1,
		Number2:   *q.Number2,
		Operation: strings.ToLower(strings.TrimSpace(q.Operation)),
	}.Key()

	value, found, err := c.journal.Cached(ctx.Request.Context(), key)
	if err != nil {
		c.log.Error("cache lookup failed", "key", key, "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	resp := CacheResponse{Key: key, Found: found}
	if found {
		resp.Result = finite(value)
	}
	ctx.JSON(http.StatusOK, resp)
}
