package routes

import (
	"medassist-chatbot-backend/config"
	"medassist-chatbot-backend/controllers"
	"medassist-chatbot-backend/database"
	"medassist-chatbot-backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, cfg *config.Config) {
	// Initialize services
	patientService := services.NewPatientService(database.GetMongoDB())
	vitalsService := services.NewVitalsService(cfg.Vitals)
	voiceService := services.NewVoiceService(cfg.Voice)
	sessionStore := services.NewMemorySessionStore(cfg.Chat.SessionTTL)
	chatbotService := services.NewChatbotService(
		patientService, // credential store
		patientService, // record store
		vitalsService,
		voiceService,
		sessionStore,
		cfg.Chat.MatchThreshold,
	)

	// Initialize controllers
	chatbotController := controllers.NewChatbotController(chatbotService, sessionStore)
	wsController := controllers.NewWebSocketController(chatbotService)

	// Landing route resets the conversation state
	router.GET("/", chatbotController.Home)

	public := router.Group("/api/v1")
	{
		// Chatbot turn endpoint
		public.POST("/chat", chatbotController.HandleChat)

		// WebSocket for real-time chat
		public.GET("/ws", wsController.HandleWebSocket)
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})
}
