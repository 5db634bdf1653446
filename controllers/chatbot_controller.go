package controllers

import (
	"net/http"

	"medassist-chatbot-backend/models"
	"medassist-chatbot-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookieName   = "session_id"
	sessionCookieMaxAge = 3600
)

type ChatbotController struct {
	chatbotService *services.ChatbotService
	sessions       services.SessionStore
}

func NewChatbotController(chatbotService *services.ChatbotService, sessions services.SessionStore) *ChatbotController {
	return &ChatbotController{
		chatbotService: chatbotService,
		sessions:       sessions,
	}
}

// HandleChat processes one conversational turn
func (cc *ChatbotController) HandleChat(c *gin.Context) {
	var req models.ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	sessionID := cc.ensureSessionCookie(c)

	response, err := cc.chatbotService.ProcessMessage(c.Request.Context(), sessionID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process message",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Home resets the visitor's conversation and hands out a session cookie,
// mirroring what loading the chat page does.
func (cc *ChatbotController) Home(c *gin.Context) {
	sessionID := cc.ensureSessionCookie(c)
	cc.sessions.Reset(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Medical assistant chatbot. POST /api/v1/chat to talk.",
	})
}

// ensureSessionCookie reads the session id cookie, minting a fresh id when
// the cookie is missing or empty, and refreshes its expiry.
func (cc *ChatbotController) ensureSessionCookie(c *gin.Context) string {
	sessionID, err := c.Cookie(sessionCookieName)
	if err != nil || sessionID == "" {
		sessionID = uuid.NewString()
	}
	c.SetCookie(sessionCookieName, sessionID, sessionCookieMaxAge, "/", "", false, true)
	return sessionID
}
