package routes

import (
	"featur_server/controllers"
	"featur_server/services"

	"github.com/gorilla/mux"
)

// RegisterConversationRoutes sets up routes for conversation-related operations under /api/conversations
func RegisterConversationRoutes(r *mux.Router, conversationService *services.ConversationService) {
	controller := controllers.NewConversationController(conversationService)

	conversationRouter := r.PathPrefix("/api/conversations").Subrouter()
	conversationRouter.HandleFunc("/resolve", controller.HandleResolveConversation).Methods("POST")
	conversationRouter.HandleFunc("", controller.HandleListConversations).Methods("GET")
}
