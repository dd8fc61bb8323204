package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/car-rental-api/internal/api/metrics"
	"github.com/99minutos/car-rental-api/internal/core/ports"
)

// AccountHandler serves signup and login. Failures are returned as errors
// and rendered by the API error handler.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Signup creates a new account.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ports.SignupInput  true  "Account details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]any
// @Router       /signup [post]
func (h *AccountHandler) Signup(c echo.Context) error {
	// Stays nil for an empty or "null" body.
	var req *ports.SignupInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err := h.accounts.Signup(c.Request().Context(), req)
	metrics.SignupsTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Success: true, Message: "Signup successful!"})
}

// Login verifies credentials and returns the account. No token is issued.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	account, err := h.accounts.Login(c.Request().Context(), ports.LoginInput{Email: req.Email, Password: req.Password})
	metrics.LoginsTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Message: "Login successful!",
		User: userResponse{
			ID:    account.ID,
			Name:  account.Name,
			Email: account.Email,
		},
	})
}
