package handlers

import (
	"barge-tracker/internal/api"
	"barge-tracker/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Handler carries the backend client into every page handler.
type Handler struct {
	api *api.Client
}

func New(client *api.Client) *Handler {
	return &Handler{api: client}
}

// render wraps c.HTML and gives every template the current user, the
// capability flags the navigation and pages key off, and pending flash
// messages from the session.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if user, ok := middleware.CurrentUser(c); ok {
		data["CurrentUser"] = user
		data["CanCreateEntries"] = user.Role.CanCreateEntries()
		data["CanViewLogs"] = user.Role.CanViewLogs()
		data["CanExportLogs"] = user.Role.CanExportLogs()
		data["CanManageUsers"] = user.Role.CanManageUsers()
	}

	sess := sessions.Default(c)
	if msgs := sess.Flashes("success"); len(msgs) > 0 {
		data["Messages"] = msgs
	}
	if errs := sess.Flashes("error"); len(errs) > 0 {
		data["Errors"] = errs
	}
	_ = sess.Save()

	c.HTML(status, tmpl, data)
}

func flash(c *gin.Context, kind, message string) {
	sess := sessions.Default(c)
	sess.AddFlash(message, kind)
	_ = sess.Save()
}
