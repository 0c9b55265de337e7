package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/SscSPs/bank_portal/internal/dto"
	"github.com/SscSPs/bank_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)                    // Staff
		users.POST("", h.createUser)                  // Admin only
		users.GET("/search", h.searchUsers)           // Staff
		users.GET("/username/:username", h.getByName) // Staff
		users.GET("/:id", h.getUser)                  // Own or staff
		users.PATCH("/:id/status", h.setUserActive)   // Admin only
		users.POST("/:id/roles", h.addRole)           // Admin only
	}
}

// createUser godoc
// @Summary Create a new user
// @Description Creates a new user (an admin action)
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username or email taken"
// @Security BearerAuth
// @Router /api/v1/users [post]
func (h *userHandler) createUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req, "CreateUser") {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to create user", slog.String("username", req.Username))

	user, err := h.userService.CreateUser(c.Request.Context(), sess, req.ToDomain())
	if err != nil {
		respondError(c, err, "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List users
// @Tags users
// @Produce  json
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	users, err := h.userService.ListUsers(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

// searchUsers godoc
// @Summary Search users by name
// @Tags users
// @Produce  json
// @Param   name query string true "Name fragment"
// @Success 200 {array} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/users/search [get]
func (h *userHandler) searchUsers(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	users, err := h.userService.SearchUsers(c.Request.Context(), sess, c.Query("name"))
	if err != nil {
		respondError(c, err, "Failed to search users")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

// getByName godoc
// @Summary Get a user by username
// @Tags users
// @Produce  json
// @Param   username path string true "Username"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/users/username/{username} [get]
func (h *userHandler) getByName(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	user, err := h.userService.GetUserByUsername(c.Request.Context(), sess, c.Param("username"))
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// getUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce  json
// @Param   id path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /api/v1/users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	userID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	user, err := h.userService.GetUser(c.Request.Context(), sess, userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// setUserActive godoc
// @Summary Enable or disable a user
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path int true "User ID"
// @Param   status body dto.SetUserActiveRequest true "Active flag"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/users/{id}/status [patch]
func (h *userHandler) setUserActive(c *gin.Context) {
	userID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.SetUserActiveRequest
	if !bindJSON(c, &req, "SetUserActive") {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	user, err := h.userService.SetActive(c.Request.Context(), sess, userID, *req.Active)
	if err != nil {
		respondError(c, err, "Failed to change user status")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// addRole godoc
// @Summary Grant a role
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path int true "User ID"
// @Param   role body dto.AddRoleRequest true "Role"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/users/{id}/roles [post]
func (h *userHandler) addRole(c *gin.Context) {
	userID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.AddRoleRequest
	if !bindJSON(c, &req, "AddRole") {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	user, err := h.userService.AddRole(c.Request.Context(), sess, userID, domain.Role(req.Role))
	if err != nil {
		respondError(c, err, "Failed to grant role")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
