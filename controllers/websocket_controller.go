package controllers

import (
	"log"
	"net/http"

	"medassist-chatbot-backend/models"
	"medassist-chatbot-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Configure properly for production
	},
}

type WebSocketController struct {
	chatbotService *services.ChatbotService
}

func NewWebSocketController(chatbotService *services.ChatbotService) *WebSocketController {
	return &WebSocketController{
		chatbotService: chatbotService,
	}
}

// HandleWebSocket serves a realtime chat connection. One connection is one
// session; the session id can be supplied as a query parameter to resume.
func (wc *WebSocketController) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	for {
		var req models.ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			log.Println("Read error:", err)
			break
		}

		response, err := wc.chatbotService.ProcessMessage(c.Request.Context(), sessionID, req)
		if err != nil {
			conn.WriteJSON(map[string]interface{}{
				"error": "Failed to process message",
			})
			continue
		}

		conn.WriteJSON(response)
	}
}
