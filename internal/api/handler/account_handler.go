package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hlaeja-ltd/account-registry/internal/api/metrics"
	"github.com/hlaeja-ltd/account-registry/internal/core/domain"
	"github.com/hlaeja-ltd/account-registry/internal/core/ports"
)

const (
	defaultPage = 1
	defaultSize = 25
)

// AccountHandler handles HTTP requests for account operations.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Create handles POST /accounts.
//
// @Summary      Create a new account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      accountRequest  true  "Account details; password is required on create"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /accounts [post]
func (h *AccountHandler) Create(c echo.Context) error {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.service.CreateAccount(c.Request().Context(), toAccountInput(req))
	if err != nil {
		return err
	}

	resp, err := toAccountResponse(account)
	if err != nil {
		return err
	}

	metrics.AccountsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, resp)
}

// Get handles GET /accounts/:id.
//
// @Summary      Get an account by id
// @Tags         accounts
// @Produce      json
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  accountResponse
// @Failure      404  {object}  errorResponse
// @Router       /accounts/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	account, err := h.service.GetAccount(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	resp, err := toAccountResponse(account)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Update handles PUT /accounts/:id. A request whose effect is identical to
// the stored account answers 202 Accepted and writes nothing.
//
// @Summary      Update an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Account id"
// @Param        body  body      accountRequest  true  "Replacement data; omit password to keep the current one"
// @Success      200   {object}  accountResponse
// @Success      202   {object}  updateStatusResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /accounts/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.service.UpdateAccount(c.Request().Context(), c.Param("id"), toAccountInput(req))
	if err != nil {
		// Accepted but unchanged is a distinct non-error outcome, not a
		// failure to be mapped by the error handler.
		if errors.Is(err, domain.ErrNoEffectiveChange) {
			metrics.AccountUpdatesTotal.WithLabelValues("no_change").Inc()
			return c.JSON(http.StatusAccepted, updateStatusResponse{Status: "unchanged"})
		}
		return err
	}

	resp, err := toAccountResponse(account)
	if err != nil {
		return err
	}

	metrics.AccountUpdatesTotal.WithLabelValues("updated").Inc()
	return c.JSON(http.StatusOK, resp)
}

// List handles GET /accounts.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Param        page  query     int  false  "1-indexed page number"  default(1)
// @Param        size  query     int  false  "Page length"            default(25)
// @Success      200   {array}   accountResponse
// @Failure      400   {object}  errorResponse
// @Router       /accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	page, err := queryInt(c, "page", defaultPage)
	if err != nil {
		return err
	}
	size, err := queryInt(c, "size", defaultSize)
	if err != nil {
		return err
	}

	accounts, err := h.service.ListAccounts(c.Request().Context(), page, size)
	if err != nil {
		return err
	}

	resp, err := toAccountResponses(accounts)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent. Range checks belong to the service.
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return n, nil
}
