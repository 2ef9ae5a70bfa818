package handlers

import (
	"log"
	"net/http"

	"barge-tracker/internal/api"
	"barge-tracker/internal/middleware"
	"barge-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// Dashboard renders the main page: the entry form for roles that record
// movements, the logs table for roles that review them. Each section loads
// its own data and a failed load leaves that section empty, never the whole
// page broken.
func (h *Handler) Dashboard(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	ctx := c.Request.Context()

	data := gin.H{}

	if user.Role.CanCreateEntries() {
		data["Refs"] = h.api.ReferenceData(ctx)
		data["Statuses"] = models.Statuses
	}

	if user.Role.CanViewLogs() {
		logs, err := h.api.Logs(ctx)
		if err != nil {
			log.Printf("[dashboard] fetch logs failed: %v", err)
		}
		data["Logs"] = logs
		data["LogColumns"] = models.LogColumns
	}

	render(c, http.StatusOK, "dashboard.html", data)
}

// SubmitEntry forwards one entry draft to the backend. The draft is sent
// exactly as posted; no numeric coercion, no cross-field checks. The redirect
// back to the dashboard re-renders the form in its empty initial state.
func (h *Handler) SubmitEntry(c *gin.Context) {
	var draft models.EntryDraft
	if err := c.ShouldBind(&draft); err != nil {
		flash(c, "error", "Error: invalid form data")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	if err := h.api.CreateEntry(c.Request.Context(), draft); err != nil {
		log.Printf("[dashboard] submit entry failed: %v", err)
		flash(c, "error", "Error: "+api.Message(err, "Network or server error"))
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	flash(c, "success", "Entry submitted successfully!")
	c.Redirect(http.StatusFound, "/dashboard")
}
