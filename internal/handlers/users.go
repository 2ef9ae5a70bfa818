package handlers

import (
	"log"
	"net/http"
	"strings"

	"barge-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// UserPanel renders the account management page. The list is fetched fresh on
// every render, so each mutation below just redirects back here instead of
// patching a local copy. At most one row is in edit mode, identified by the
// `edit` query parameter; opening another row's edit replaces it and the
// prior row's unsaved changes are discarded.
func (h *Handler) UserPanel(c *gin.Context) {
	data := gin.H{
		"Roles":  models.Roles,
		"EditID": models.ID(c.Query("edit")),
	}

	users, err := h.api.Users(c.Request.Context())
	if err != nil {
		log.Printf("[users] fetch users failed: %v", err)
		data["FetchError"] = "Failed to fetch users"
	}
	data["Users"] = users

	render(c, http.StatusOK, "users.html", data)
}

type newUserForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Role     string `form:"role"`
}

func (h *Handler) CreateUser(c *gin.Context) {
	var form newUserForm
	if err := c.ShouldBind(&form); err != nil {
		flash(c, "error", "Failed to add user")
		c.Redirect(http.StatusFound, "/user-management")
		return
	}

	form.Username = strings.TrimSpace(form.Username)
	role := models.Role(form.Role)
	if role == "" {
		role = models.RoleViewer
	}

	if err := h.api.CreateUser(c.Request.Context(), form.Username, form.Password, role); err != nil {
		log.Printf("[users] add user failed: %v", err)
		flash(c, "error", "Failed to add user")
	} else {
		flash(c, "success", "User added successfully")
	}
	c.Redirect(http.StatusFound, "/user-management")
}

// UpdateUser saves a staged row edit: the role is sent unconditionally, the
// password only when a new one was typed.
func (h *Handler) UpdateUser(c *gin.Context) {
	id := models.ID(c.Param("id"))
	role := models.Role(c.PostForm("role"))
	password := c.PostForm("password")

	if err := h.api.UpdateUser(c.Request.Context(), id, role, password); err != nil {
		log.Printf("[users] update user %s failed: %v", id, err)
		flash(c, "error", "Failed to update user")
	} else {
		flash(c, "success", "User updated")
	}
	c.Redirect(http.StatusFound, "/user-management")
}

// DeleteUser removes an account immediately. No confirmation step, no undo.
func (h *Handler) DeleteUser(c *gin.Context) {
	id := models.ID(c.Param("id"))

	if err := h.api.DeleteUser(c.Request.Context(), id); err != nil {
		log.Printf("[users] delete user %s failed: %v", id, err)
		flash(c, "error", "Failed to delete user")
	} else {
		flash(c, "success", "User deleted")
	}
	c.Redirect(http.StatusFound, "/user-management")
}
