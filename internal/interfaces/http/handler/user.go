package handler

import (
	"github.com/gin-gonic/gin"

	appidentity "github.com/recoffee/backend/internal/application/identity"
	"github.com/recoffee/backend/internal/domain/shared"
)

// ListUsersQuery holds paging parameters for the user list
type ListUsersQuery struct {
	Skip  int `form:"skip" binding:"min=0"`
	Limit int `form:"limit" binding:"min=0"`
}

// UserHandler handles user lookup endpoints
type UserHandler struct {
	BaseHandler
	userService *appidentity.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *appidentity.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns a page of users. skip defaults to 0 and limit to 10.
// GET /api/users?skip=&limit=
func (h *UserHandler) List(c *gin.Context) {
	def := shared.DefaultOffsetPage()
	query := ListUsersQuery{Skip: def.Skip, Limit: def.Limit}
	if err := c.ShouldBindQuery(&query); err != nil {
		h.ValidationError(c, err)
		return
	}

	users, err := h.userService.List(c.Request.Context(), shared.OffsetPage{Skip: query.Skip, Limit: query.Limit})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, users)
}

// Get returns one user
// GET /api/users/:user_id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.pathInt(c, "user_id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}
