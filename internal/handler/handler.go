package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
	"github.com/Astemirdum/lending-service/pkg/auth"
	md "github.com/Astemirdum/lending-service/pkg/middleware"
	"github.com/Astemirdum/lending-service/pkg/validate"
)

type Handler struct {
	catalogSvc CatalogService
	ledgerSvc  LedgerService
	querySvc   QueryService
	log        *zap.Logger
}

func New(catalogSvc CatalogService, ledgerSvc LedgerService, querySvc QueryService, log *zap.Logger) *Handler {
	h := &Handler{
		catalogSvc: catalogSvc,
		ledgerSvc:  ledgerSvc,
		querySvc:   querySvc,
		log:        log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/books", h.AddBook)
	api.GET("/books", h.GetBooks)
	api.GET("/books/names", h.SuggestNames)
	api.GET("/books/authors", h.SuggestAuthors)

	api.GET("/books/status", h.BatchStatus, auth.MiddlewareUserID)
	api.GET("/books/:bookId/status", h.Status, auth.MiddlewareUserID)
	api.POST("/books/:bookId/borrow", h.Borrow, auth.MiddlewareUserID)
	api.POST("/books/:bookId/return", h.Return, auth.MiddlewareUserID)
	api.GET("/loans", h.GetUserLoans, auth.MiddlewareUserID)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) AddBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.IssueYear > time.Now().Year() {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("issueYear is in the future"))
	}

	book, err := h.catalogSvc.AddBook(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrBookExists) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) GetBooks(c echo.Context) error {
	ctx := c.Request().Context()

	filter := model.BookFilter{
		Name:   c.QueryParam("name"),
		Author: c.QueryParam("author"),
		ISBN:   c.QueryParam("isbn"),
	}
	var (
		err  error
		page int
		size int
	)
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("page is invalid"))
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("size is invalid"))
		}
	}

	books, err := h.catalogSvc.ListBooks(ctx, filter, page, size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) SuggestNames(c echo.Context) error {
	names, err := h.catalogSvc.SuggestNames(c.Request().Context(), c.QueryParam("prefix"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, names)
}

func (h *Handler) SuggestAuthors(c echo.Context) error {
	authors, err := h.catalogSvc.SuggestAuthors(c.Request().Context(), c.QueryParam("prefix"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, authors)
}

func (h *Handler) Borrow(c echo.Context) error {
	bookID := c.Param("bookId")
	if bookID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("empty bookId"))
	}
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	resp, err := h.ledgerSvc.Borrow(c.Request().Context(), bookID, userID)
	if err != nil {
		var noCap *errs.NoCapacityError
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.As(err, &noCap):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Return(c echo.Context) error {
	bookID := c.Param("bookId")
	if bookID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("empty bookId"))
	}
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	if err := h.ledgerSvc.Return(c.Request().Context(), bookID, userID); err != nil {
		switch {
		case errors.Is(err, errs.ErrNoActiveLoan):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Status(c echo.Context) error {
	bookID := c.Param("bookId")
	if bookID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("empty bookId"))
	}
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	status, err := h.querySvc.Status(c.Request().Context(), bookID, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, status)
}

func (h *Handler) BatchStatus(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var bookIDs []string
	for _, id := range strings.Split(c.QueryParam("ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			bookIDs = append(bookIDs, id)
		}
	}

	statuses, err := h.querySvc.BatchStatus(c.Request().Context(), bookIDs, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, statuses)
}

func (h *Handler) GetUserLoans(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	loans, err := h.querySvc.UserActiveLoans(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, loans)
}
