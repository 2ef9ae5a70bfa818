package middleware

import (
	"encoding/json"

	"barge-tracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionUserKey is the one session slot this app writes: the serialized
// record of the logged-in user. Set on login, removed on logout.
const SessionUserKey = "user"

const contextUserKey = "CurrentUser"

// InjectUser decodes the session's user record, if any, into the request
// context for handlers and templates.
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if raw, ok := sess.Get(SessionUserKey).(string); ok && raw != "" {
			var user models.User
			if err := json.Unmarshal([]byte(raw), &user); err == nil {
				c.Set(contextUserKey, user)
			}
		}

		c.Next()
	}
}

// CurrentUser returns the logged-in user placed by InjectUser.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
