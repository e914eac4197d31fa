package handlers

import (
	"errors"
	"net/http"

	"contact_management/internal/service"

	"github.com/gin-gonic/gin"
)

// Single, shared credentials payload for register and login. The browser
// submits a form; API clients may send JSON — both bind.
type credentialsForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// bindOrBadRequest binds form or JSON into dst and writes a 400 on failure.
// Returns false if the request was already handled.
func (h *Handler) bindOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		respondError(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  credentialsForm  true  "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var input credentialsForm
	if ok := h.bindOrBadRequest(c, &input); !ok {
		return
	}

	if _, err := h.services.SignUp(input.Username, input.Password); err != nil {
		var vErr service.ValidationError
		switch {
		case errors.As(err, &vErr):
			respondError(c, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, service.ErrUsernameTaken):
			respondError(c, http.StatusConflict, err.Error())
		default:
			if h.log != nil {
				h.log.Errorw("register_failed", "username", input.Username, "err", err)
			}
			respondError(c, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "registration successful, please log in"})
}

// @Summary      Log in and establish a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  credentialsForm  true  "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input credentialsForm
	if ok := h.bindOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.Authenticate(input.Username, input.Password)
	if err != nil {
		// One generic message for unknown user and wrong password alike.
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, err.Error())
			return
		}
		if h.log != nil {
			h.log.Errorw("login_failed", "username", input.Username, "err", err)
		}
		respondError(c, http.StatusInternalServerError, "login failed")
		return
	}

	token := h.services.Sessions.Create(user.ID, user.Username)
	h.setSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "login successful"})
}

// @Summary      Log out
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *Handler) logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookieName); err == nil && token != "" {
		h.services.Sessions.Delete(token)
	}
	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}
