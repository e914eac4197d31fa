package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// @Summary      Landing page
// @Description  Redirects to the dashboard when a session exists.
// @Tags         pages
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Success      302
// @Router       / [get]
func (h *Handler) index(c *gin.Context) {
	if _, ok := h.sessionFromCookie(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "please log in or register"})
}

// @Summary      Contact list view
// @Description  Lists the caller's contacts, newest first; ?search= filters by name or phone substring.
// @Tags         pages
// @Produce      json
// @Param        search  query  string  false  "Substring to match against name or phone"
// @Success      200  {object}  map[string]interface{}  "username, search, count, contacts"
// @Success      302
// @Router       /dashboard [get]
func (h *Handler) dashboard(c *gin.Context) {
	ident, ok := h.sessionFromCookie(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	search := strings.TrimSpace(c.Query("search"))
	contacts, err := h.services.Contacts.List(c.Request.Context(), ident.UserID, search)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("dashboard_list_failed", "userId", ident.UserID, "err", err)
		}
		respondError(c, http.StatusInternalServerError, "failed to load contacts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"username": ident.Username,
		"search":   search,
		"count":    len(contacts),
		"contacts": contacts,
	})
}
