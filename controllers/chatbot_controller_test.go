package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medassist-chatbot-backend/models"
	"medassist-chatbot-backend/services"
	"medassist-chatbot-backend/utils"

	"github.com/gin-gonic/gin"
)

type nobodyCredentials struct{}

func (nobodyCredentials) Verify(ctx context.Context, email, password string) (*models.Identity, error) {
	return nil, nil
}

type emptyRecords struct{}

func (emptyRecords) Treatments(ctx context.Context, patientID int) ([]models.Treatment, error) {
	return nil, nil
}

func (emptyRecords) SearchTreatment(ctx context.Context, patientID int, substring string) (*models.Treatment, error) {
	return nil, nil
}

type noVitals struct{}

func (noVitals) LatestBloodSugar(ctx context.Context, patientID int) (map[string]interface{}, error) {
	return nil, nil
}

func (noVitals) LatestHeartRecord(ctx context.Context, patientID int) (map[string]interface{}, error) {
	return nil, nil
}

type silentVoice struct{}

func (silentVoice) Listen(ctx context.Context) (string, error) { return "", nil }
func (silentVoice) Speak(text string)                          {}

func newChatRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := services.NewMemorySessionStore(0)
	service := services.NewChatbotService(
		nobodyCredentials{}, emptyRecords{}, noVitals{}, silentVoice{},
		store, utils.DefaultMatchThreshold,
	)
	controller := NewChatbotController(service, store)

	router := gin.New()
	router.POST("/api/v1/chat", controller.HandleChat)
	return router
}

func postChat(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChatEmptyCredentialsGetLocalizedReply(t *testing.T) {
	router := newChatRouter()

	// Empty credential strings are a conversational outcome, not a
	// protocol failure: the turn binds, verification misses, and the
	// caller gets the localized reply over HTTP 200.
	w := postChat(router, `{"message":"hello","email":"","password":""}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Invalid email or password.") {
		t.Errorf("body = %s, want the invalid-credentials reply", w.Body.String())
	}
}

func TestChatMalformedJSONRejected(t *testing.T) {
	router := newChatRouter()

	w := postChat(router, `{"message":`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestChatSetsSessionCookie(t *testing.T) {
	router := newChatRouter()

	w := postChat(router, `{"message":"hello","email":"a@b.c","password":"x"}`)

	var found bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "session_id" && cookie.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("expected a session_id cookie on the response")
	}
}
