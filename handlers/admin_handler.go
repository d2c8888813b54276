package handlers

import (
	"net/http"
	"strconv"

	"newshub/helper"
	"newshub/middleware"
	"newshub/models"
	"newshub/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	userService services.UserService
}

func NewAdminHandler(userService services.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

func (h *AdminHandler) GetUsers(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	users, err := h.userService.GetUsers(actor)
	if err != nil {
		helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *AdminHandler) UpdateRole(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": models.ErrNotFound.Error()})
		return
	}

	var req models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, err := h.userService.UpdateRole(actor, uint(id), req.Role)
	if err != nil {
		helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Role updated successfully",
		"user":    user,
	})
}

// DeleteAccount removes a user along with their comments; their articles
// are reassigned to the anonymous placeholder account. Users may delete
// their own account, admins may delete anyone's.
func (h *AdminHandler) DeleteAccount(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": models.ErrNotFound.Error()})
		return
	}

	if err := h.userService.DeleteAccount(actor, uint(id)); err != nil {
		helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
