// Controller layer translates HTTP <-> service calls. Every response,
// success or failure, goes out in the ApiResponse envelope.

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Thammasok/user-api/apperrors"
	"github.com/Thammasok/user-api/models"
	"github.com/Thammasok/user-api/services"
)

// UserHandler bundles the dependencies the user endpoints need.
type UserHandler struct {
	svc services.UserService
}

// NewUserHandler constructs a handler with its service injected.
func NewUserHandler(svc services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetAll handles GET /api/users.
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.svc.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Success("Users retrieved successfully", users))
}

// GetByID handles GET /api/users/:id.
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	u, err := h.svc.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Success("User retrieved successfully", u))
}

// createUserBody uses pointer fields so a missing key is distinguishable
// from an empty string: absent keys fail here, empty values still reach
// the service where the validation order applies.
type createUserBody struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c *gin.Context) {
	var body createUserBody
	if err := c.ShouldBindJSON(&body); err != nil || body.Name == nil || body.Email == nil {
		c.JSON(http.StatusBadRequest, models.Error("Invalid request body"))
		return
	}
	req := models.CreateUserRequest{Name: *body.Name, Email: *body.Email}
	u, err := h.svc.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.Success("User created successfully", u))
}

// Update handles PUT /api/users/:id (partial merge, not full replace).
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Error("Invalid request body"))
		return
	}
	u, err := h.svc.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Success("User updated successfully", u))
}

// Delete handles DELETE /api/users/:id. Deletion is permanent.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Success("User deleted successfully", nil))
}

// parseID reads the :id path param; a malformed id fails with 400 before
// any service call runs.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Error("Invalid user ID format"))
		return uuid.Nil, false
	}
	return id, true
}

// respondError converts a service error into status + envelope through
// the taxonomy; anything unrecognized folds into a 500.
func respondError(c *gin.Context, err error) {
	status, msg := apperrors.HTTPStatus(err)
	c.JSON(status, models.Error(msg))
}
