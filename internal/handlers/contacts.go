package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"contact_management/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO for creating/updating a contact; binds from form or JSON.
type contactForm struct {
	Name    string `form:"name" json:"name"`
	Phone   string `form:"phone" json:"phone"`
	Address string `form:"address" json:"address"`
}

func (f contactForm) params() service.ContactParams {
	return service.ContactParams{Name: f.Name, Phone: f.Phone, Address: f.Address}
}

// contactError maps service errors onto the failure envelope. Validation,
// duplicate and not-found each keep their own status; everything else is a
// generic 500 (logged, never surfaced raw).
func (h *Handler) contactError(c *gin.Context, logKey string, err error) {
	var vErr service.ValidationError
	switch {
	case errors.As(err, &vErr):
		respondError(c, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, service.ErrDuplicatePhone):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrContactNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		if h.log != nil {
			h.log.Errorw(logKey, "err", err)
		}
		respondError(c, http.StatusInternalServerError, "operation failed")
	}
}

// contactIDParam parses the :id path segment.
func contactIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid contact id")
		return 0, false
	}
	return id, true
}

// @Summary      Add a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body  contactForm  true  "Contact fields"
// @Success      200  {object}  map[string]interface{}  "success, message, contact"
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /api/contacts [post]
func (h *Handler) createContact(c *gin.Context) {
	var input contactForm
	if ok := h.bindOrBadRequest(c, &input); !ok {
		return
	}

	contact, err := h.services.Contacts.Create(c.Request.Context(), currentUserID(c), input.params())
	if err != nil {
		h.contactError(c, "contact_create_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "contact " + contact.Name + " added",
		"contact": contact,
	})
}

// @Summary      Update a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id    path  int          true  "Contact id"
// @Param        body  body  contactForm  true  "Contact fields"
// @Success      200  {object}  map[string]interface{}  "success, message, contact"
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /api/contacts/{id} [put]
func (h *Handler) updateContact(c *gin.Context) {
	id, ok := contactIDParam(c)
	if !ok {
		return
	}
	var input contactForm
	if ok := h.bindOrBadRequest(c, &input); !ok {
		return
	}

	contact, err := h.services.Contacts.Update(c.Request.Context(), currentUserID(c), id, input.params())
	if err != nil {
		h.contactError(c, "contact_update_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "contact " + contact.Name + " updated",
		"contact": contact,
	})
}

// @Summary      Delete a contact
// @Tags         contacts
// @Produce      json
// @Param        id  path  int  true  "Contact id"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/contacts/{id} [delete]
func (h *Handler) deleteContact(c *gin.Context) {
	id, ok := contactIDParam(c)
	if !ok {
		return
	}

	if err := h.services.Contacts.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		h.contactError(c, "contact_delete_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "contact deleted"})
}

// @Summary      Contact count
// @Tags         contacts
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "success, count"
// @Failure      401  {object}  map[string]interface{}
// @Router       /api/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	count, err := h.services.Contacts.Count(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.contactError(c, "contact_count_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}
