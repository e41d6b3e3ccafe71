package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/personal_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/personal_ledger_app/internal/dto"
	"github.com/SscSPs/personal_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService    portssvc.UserSvcFacade
	balanceService portssvc.BalanceSvc
	tokenService   portssvc.TokenSvc
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade, bs portssvc.BalanceSvc, ts portssvc.TokenSvc) *userHandler {
	return &userHandler{
		userService:    us,
		balanceService: bs,
		tokenService:   ts,
	}
}

// registerUserAuthRoutes registers the public user routes. loginGuard runs in front of authentication.
func registerUserAuthRoutes(rg *gin.RouterGroup, h *userHandler, loginGuard gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.POST("", h.registerUser)
		users.POST("/authenticate", loginGuard, h.authenticate)
	}
}

// registerUserRoutes registers the user routes that need an authenticated caller.
func registerUserRoutes(rg *gin.RouterGroup, h *userHandler) {
	users := rg.Group("/users")
	{
		users.GET("/:id/balance", h.getBalance)
	}
}

// registerUser godoc
// @Summary Register a user
// @Description Creates a new owner of ledger entries. Emails are unique.
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.RegisterUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} map[string]any "Invalid input"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Failed to register user"
// @Router /users [post]
func (h *userHandler) registerUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, logger, err)
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to register user")
		return
	}

	logger.Info("User registered successfully", slog.Int64("user_id", user.UserID))
	c.Header("Location", fmt.Sprintf("/api/v1/users/%d", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// authenticate godoc
// @Summary Authenticate a user
// @Description Checks email and password and returns an access token
// @Tags users
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]any "Invalid input"
// @Failure 401 {object} map[string]string "Incorrect password"
// @Failure 404 {object} map[string]string "Unknown email"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to authenticate"
// @Router /users/authenticate [post]
func (h *userHandler) authenticate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, logger, err)
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, logger, err, "Failed to authenticate")
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate token")
		return
	}

	logger.Info("User authenticated", slog.Int64("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}

// getBalance godoc
// @Summary Get an owner's balance
// @Description Returns income minus expense over all of the owner's entries, whatever their status
// @Tags users
// @Produce  json
// @Param   id path int true "User ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Security BearerAuth
// @Router /users/{id}/balance [get]
func (h *userHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	balance, err := h.balanceService.GetOwnerBalance(c.Request.Context(), ownerID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute balance")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{OwnerID: ownerID, Balance: balance})
}
