package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"featur_server/services"
)

// ConversationController struct
type ConversationController struct {
	ConversationService *services.ConversationService
}

// NewConversationController initializes the controller
func NewConversationController(service *services.ConversationService) *ConversationController {
	return &ConversationController{ConversationService: service}
}

// HandleResolveConversation - finds or creates the conversation for a user pair
func (c *ConversationController) HandleResolveConversation(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserA string `json:"userA"`
		UserB string `json:"userB"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	conversation, err := c.ConversationService.GetOrCreateConversation(r.Context(), request.UserA, request.UserB)
	if errors.Is(err, services.ErrInvalidParticipants) {
		http.Error(w, `{"error": "Two distinct participant ids are required"}`, http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("❌ Failed to resolve conversation: %v", err)
		http.Error(w, `{"error": "Failed to resolve conversation"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(conversation)
}

// HandleListConversations - lists all conversations a user participates in
func (c *ConversationController) HandleListConversations(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}

	conversations, err := c.ConversationService.ListConversationsForUser(r.Context(), userID)
	if err != nil {
		log.Printf("❌ Failed to list conversations: %v", err)
		http.Error(w, `{"error": "Failed to list conversations"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(conversations)
}
