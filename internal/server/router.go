package server

import (
	"html/template"
	"io/fs"
	"net/http"

	"barge-tracker/internal/api"
	"barge-tracker/internal/config"
	"barge-tracker/internal/handlers"
	"barge-tracker/internal/middleware"
	"barge-tracker/internal/models"
	"barge-tracker/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, client *api.Client) *gin.Engine {
	r := gin.Default()

	tmpl := template.Must(template.New("").ParseFS(web.Templates, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(staticFS))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("barge_session", store))

	r.Use(middleware.InjectUser())

	h := handlers.New(client)

	redirectBySession := func(c *gin.Context) {
		if _, ok := middleware.CurrentUser(c); ok {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		c.Redirect(http.StatusFound, "/login")
	}

	r.GET("/", redirectBySession)

	// AUTH
	r.GET("/login", middleware.RedirectIfAuthenticated(), h.ShowLogin)
	r.POST("/login", middleware.RedirectIfAuthenticated(), h.Login)
	r.GET("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// DASHBOARD
	auth.GET("/dashboard", h.Dashboard)
	auth.POST("/barge-entry",
		middleware.RequireRole(models.RoleViewer, models.RoleGod),
		h.SubmitEntry,
	)
	auth.GET("/barge-logs/export",
		middleware.RequireRole(models.RoleAdmin, models.RoleGod),
		h.ExportLogs,
	)

	// USER MANAGEMENT — god only
	admin := auth.Group("/user-management")
	admin.Use(middleware.RequireRole(models.RoleGod))
	admin.GET("", h.UserPanel)
	admin.POST("/users", h.CreateUser)
	admin.POST("/users/:id/update", h.UpdateUser)
	admin.POST("/users/:id/delete", h.DeleteUser)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.NoRoute(redirectBySession)

	return r
}
