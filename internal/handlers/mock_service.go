package handlers

import (
	"context"
	"net/http"
	"time"

	"contact_management/internal/models"
	"contact_management/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID  int
	signUpErr error
	authUser  *models.User
	authErr   error

	lastSignUpUsername string
	lastSignUpPassword string
	lastAuthUsername   string
	lastAuthPassword   string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) Authenticate(username, password string) (*models.User, error) {
	m.lastAuthUsername = username
	m.lastAuthPassword = password
	return m.authUser, m.authErr
}

// mockSessions resolves a fixed set of tokens and records mutations.
type mockSessions struct {
	identities map[string]service.SessionIdentity

	createdTokens []string
	deletedTokens []string
	nextToken     string
}

func newMockSessions() *mockSessions {
	return &mockSessions{
		identities: make(map[string]service.SessionIdentity),
		nextToken:  "tok-1",
	}
}

func (m *mockSessions) Create(userID int, username string) string {
	token := m.nextToken
	m.identities[token] = service.SessionIdentity{UserID: userID, Username: username}
	m.createdTokens = append(m.createdTokens, token)
	return token
}

func (m *mockSessions) Get(token string) (service.SessionIdentity, bool) {
	ident, ok := m.identities[token]
	return ident, ok
}

func (m *mockSessions) Delete(token string) {
	m.deletedTokens = append(m.deletedTokens, token)
	delete(m.identities, token)
}

func (m *mockSessions) TTL() time.Duration { return 30 * time.Minute }

func (m *mockSessions) Run(ctx context.Context, tick time.Duration) {}

type mockContacts struct {
	listResp   []models.Contact
	listErr    error
	createResp models.Contact
	createErr  error
	updateResp models.Contact
	updateErr  error
	deleteErr  error
	countResp  int
	countErr   error

	lastUserID int
	lastID     int
	lastSearch string
	lastParams service.ContactParams
}

func (m *mockContacts) List(ctx context.Context, userID int, search string) ([]models.Contact, error) {
	m.lastUserID = userID
	m.lastSearch = search
	return m.listResp, m.listErr
}

func (m *mockContacts) Create(ctx context.Context, userID int, p service.ContactParams) (models.Contact, error) {
	m.lastUserID = userID
	m.lastParams = p
	return m.createResp, m.createErr
}

func (m *mockContacts) Update(ctx context.Context, userID, contactID int, p service.ContactParams) (models.Contact, error) {
	m.lastUserID = userID
	m.lastID = contactID
	m.lastParams = p
	return m.updateResp, m.updateErr
}

func (m *mockContacts) Delete(ctx context.Context, userID, contactID int) error {
	m.lastUserID = userID
	m.lastID = contactID
	return m.deleteErr
}

func (m *mockContacts) Count(ctx context.Context, userID int) (int, error) {
	m.lastUserID = userID
	return m.countResp, m.countErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// loggedInSessions returns a sessions mock that already knows one token.
func loggedInSessions(token string, userID int, username string) *mockSessions {
	m := newMockSessions()
	m.identities[token] = service.SessionIdentity{UserID: userID, Username: username}
	return m
}

func withSessionCookie(req *http.Request, token string) {
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
}
