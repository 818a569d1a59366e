// Package handlers wires HTTP requests to services and maps errors to
// RFC 9457 Problem Details.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sid-c23/cs6440-project/internal/apierror"
	"github.com/sid-c23/cs6440-project/internal/models"
	"github.com/sid-c23/cs6440-project/internal/repository"
	"github.com/sid-c23/cs6440-project/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// userIDParam validates the :id path parameter as a UUID. On failure it
// writes the problem response and returns false.
func userIDParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidUUIDError(apierror.GetRequestID(c), "id", id))
		return "", false
	}
	return id, true
}

// CreateUser handles POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "name", Message: "is required", Code: "required"},
		}))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}
	c.JSON(http.StatusCreated, user)
}

// ListUsers handles GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		writeUserError(c, err, id)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		writeUserError(c, err, id)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeUserError maps repository errors on user lookups to problem responses.
func writeUserError(c *gin.Context, err error, id string) {
	requestID := apierror.GetRequestID(c)
	if errors.Is(err, repository.ErrNotFound) {
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "User", id))
		return
	}
	apierror.WriteProblem(c, apierror.NewInternalError(requestID))
}
