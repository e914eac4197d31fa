package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"contact_management/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware + a protected endpoint
func newMiddlewareOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/secure", h.sessionMiddleware, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "userId": currentUserID(c)})
	})
	return r
}

func TestSessionMiddleware_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		token string // "" means no cookie at all
	}{
		{"missing cookie", ""},
		{"unknown or expired token", "stale-token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &service.Service{Sessions: newMockSessions()}
			r := newMiddlewareOnlyRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.token != "" {
				withSessionCookie(req, tc.token)
			}
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status: got %d, want 401 (body=%s)", w.Code, w.Body.String())
			}

			var out struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Success {
				t.Fatalf("expected success=false, body=%s", w.Body.String())
			}
			if out.Message != msgLoginRequired {
				t.Fatalf("message: got %q, want %q", out.Message, msgLoginRequired)
			}
		})
	}
}

func TestSessionMiddleware_SuccessSetsIdentityAndRefreshesCookie(t *testing.T) {
	s := &service.Service{Sessions: loggedInSessions("tok-123", 123, "alice")}
	r := newMiddlewareOnlyRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	withSessionCookie(req, "tok-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		OK     bool `json:"ok"`
		UserID int  `json:"userId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || resp.UserID != 123 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	// the cookie deadline slides with the session
	refreshed := false
	for _, ck := range w.Result().Cookies() {
		if ck.Name == sessionCookieName && ck.Value == "tok-123" && ck.MaxAge > 0 {
			refreshed = true
		}
	}
	if !refreshed {
		t.Fatalf("expected a refreshed session cookie, got %v", w.Result().Cookies())
	}
}
