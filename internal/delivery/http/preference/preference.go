package http_preference

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	http_common "github.com/AdAndRoll/movie-search-server/internal/delivery/http/common"
	"github.com/AdAndRoll/movie-search-server/internal/model"
	usecase_aggregation "github.com/AdAndRoll/movie-search-server/internal/usecase/aggregation"
	usecase_preference "github.com/AdAndRoll/movie-search-server/internal/usecase/preference"
)

type Controller struct {
	usecase *usecase_preference.Usecase
	logger  *slog.Logger
}

type Option func(*Controller)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_preference.Usecase, opts ...Option) *Controller {
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
	router.POST("/submit-preferences", c.submit)
	router.POST("/retry-aggregation", c.retry)
}

// SubmitRequestDTO критерии одного участника комнаты
type SubmitRequestDTO struct {
	UserID string   `json:"user_id" binding:"required" example:"u1"`
	RoomID string   `json:"room_id" binding:"required" example:"r1"`
	Genres []string `json:"genres" binding:"required" example:"драма,комедия"`
	Years  []int    `json:"years" binding:"required,len=2" example:"1990,2000"`
}

// Submit сохраняет предпочтения участника
// @Summary Отправка предпочтений
// @Description Сохраняет жанры и диапазон лет участника. Когда все участники онлайн отправили предпочтения, формирует подборку фильмов для комнаты.
// @Tags Preferences
// @Accept json
// @Produce json
// @Param request body SubmitRequestDTO true "Предпочтения участника"
// @Success 200 {object} http_common.StatusResponse "waiting или ready"
// @Failure 400 {object} http_common.ErrorResponse "Некорректные данные"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /submit-preferences [post]
func (c *Controller) submit(ctx *gin.Context) {
	var req SubmitRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("bad submit request",
			slog.String("op", "submit"),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request body: user_id, room_id, genres and years [start, end] are required",
		})
		return
	}

	status, err := c.usecase.Submit(ctx.Request.Context(), model.Preference{
		UserID: model.UserID(req.UserID),
		RoomID: model.RoomID(req.RoomID),
		Genres: req.Genres,
		Years:  model.YearRange{Start: req.Years[0], End: req.Years[1]},
	})
	if err != nil {
		c.fail(ctx, "submit", model.RoomID(req.RoomID), err)
		return
	}

	ctx.JSON(http.StatusOK, http_common.StatusResponse{Status: string(status)})
}

type RetryRequestDTO struct {
	RoomID string `json:"room_id" binding:"required" example:"r1"`
}

// Retry повторяет формирование подборки
// @Summary Повторная агрегация
// @Description Повторно проверяет кворум комнаты и формирует подборку, если прошлая попытка завершилась ошибкой.
// @Tags Preferences
// @Accept json
// @Produce json
// @Param request body RetryRequestDTO true "Комната"
// @Success 200 {object} http_common.StatusResponse "waiting или ready"
// @Failure 400 {object} http_common.ErrorResponse "Некорректные данные"
// @Failure 404 {object} http_common.ErrorResponse "Комната не найдена"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /retry-aggregation [post]
func (c *Controller) retry(ctx *gin.Context) {
	var req RetryRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "room_id is required",
		})
		return
	}

	roomID := model.RoomID(strings.TrimSpace(req.RoomID))
	status, err := c.usecase.Retry(ctx.Request.Context(), roomID)
	if err != nil {
		c.fail(ctx, "retry", roomID, err)
		return
	}

	ctx.JSON(http.StatusOK, http_common.StatusResponse{Status: string(status)})
}

func (c *Controller) fail(ctx *gin.Context, op string, roomID model.RoomID, err error) {
	c.logger.Error("request failed",
		slog.String("op", op),
		slog.String("room_id", string(roomID)),
		slog.String("error", err.Error()),
	)

	switch {
	case errors.Is(err, usecase_preference.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: strings.TrimPrefix(err.Error(), usecase_preference.ErrInvalidInput.Error()+": "),
		})
	case errors.Is(err, usecase_preference.ErrResourceNotFound):
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "room not found",
		})
	case errors.Is(err, usecase_aggregation.ErrExternalAPI):
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "movie catalog request failed",
		})
	default:
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
	}
}
