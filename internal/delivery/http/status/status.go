package http_status

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	http_common "github.com/AdAndRoll/movie-search-server/internal/delivery/http/common"
	"github.com/AdAndRoll/movie-search-server/internal/model"
	usecase_status "github.com/AdAndRoll/movie-search-server/internal/usecase/status"
)

type Controller struct {
	usecase *usecase_status.Usecase
	logger  *slog.Logger
}

type Option func(*Controller)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_status.Usecase, opts ...Option) *Controller {
	c := &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/check-status", c.status)
	router.GET("/room-results", c.results)
}

// Status возвращает готовность подборки комнаты
// @Summary Статус комнаты
// @Description ready, если подборка сформирована, waiting, если есть предпочтения.
// @Tags Rooms
// @Produce json
// @Param room_id query string true "Идентификатор комнаты"
// @Success 200 {object} http_common.StatusResponse "Статус комнаты"
// @Failure 400 {object} http_common.ErrorResponse "Не передан room_id"
// @Failure 404 {object} http_common.ErrorResponse "Комната не найдена"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /check-status [get]
func (c *Controller) status(ctx *gin.Context) {
	roomID := model.RoomID(ctx.Query("room_id"))

	status, err := c.usecase.Check(ctx.Request.Context(), roomID)
	if err != nil {
		c.fail(ctx, "check_status", roomID, err)
		return
	}

	ctx.JSON(http.StatusOK, http_common.StatusResponse{Status: string(status)})
}

type ResultsResponseDTO struct {
	RoomID string        `json:"room_id"`
	Movies []model.Movie `json:"movies"`
}

// Results возвращает сохраненную подборку фильмов
// @Summary Подборка комнаты
// @Tags Rooms
// @Produce json
// @Param room_id query string true "Идентификатор комнаты"
// @Success 200 {object} ResultsResponseDTO "Подборка фильмов"
// @Failure 400 {object} http_common.ErrorResponse "Не передан room_id"
// @Failure 404 {object} http_common.ErrorResponse "Подборка еще не готова"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /room-results [get]
func (c *Controller) results(ctx *gin.Context) {
	roomID := model.RoomID(ctx.Query("room_id"))

	result, err := c.usecase.Results(ctx.Request.Context(), roomID)
	if err != nil {
		c.fail(ctx, "room_results", roomID, err)
		return
	}

	ctx.JSON(http.StatusOK, ResultsResponseDTO{
		RoomID: string(result.RoomID),
		Movies: result.Movies,
	})
}

func (c *Controller) fail(ctx *gin.Context, op string, roomID model.RoomID, err error) {
	c.logger.Error("request failed",
		slog.String("op", op),
		slog.String("room_id", string(roomID)),
		slog.String("error", err.Error()),
	)

	switch {
	case errors.Is(err, usecase_status.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "room_id is required",
		})
	case errors.Is(err, usecase_status.ErrResourceNotFound):
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "room not found",
		})
	default:
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
	}
}
