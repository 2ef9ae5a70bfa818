package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"barge-tracker/internal/api"
	"barge-tracker/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Login submits the credentials to the backend and, on success, persists the
// returned user record as the session. The backend decides validity; a stale
// session is trusted until logout.
func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Login failed"})
		return
	}
	form.Username = strings.TrimSpace(form.Username)

	user, err := h.api.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		log.Printf("[auth] login failed for %q: %v", form.Username, err)
		render(c, http.StatusUnauthorized, "login.html", gin.H{
			"error": api.Message(err, "Login failed"),
		})
		return
	}

	raw, err := json.Marshal(user)
	if err != nil {
		render(c, http.StatusInternalServerError, "login.html", gin.H{"error": "Login failed"})
		return
	}

	sess := sessions.Default(c)
	sess.Set(middleware.SessionUserKey, string(raw))
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Delete(middleware.SessionUserKey)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
