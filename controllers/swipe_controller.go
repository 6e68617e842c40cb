package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"featur_server/services"
)

// SwipeController struct
type SwipeController struct {
	SwipeService *services.SwipeService
}

// NewSwipeController initializes the controller
func NewSwipeController(service *services.SwipeService) *SwipeController {
	return &SwipeController{SwipeService: service}
}

// HandleRecordSwipe - records a like/pass and reports whether a match formed
func (c *SwipeController) HandleRecordSwipe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ActorID  string `json:"actorId"`
		TargetID string `json:"targetId"`
		Action   string `json:"action"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	result, err := c.SwipeService.RecordSwipe(r.Context(), request.ActorID, request.TargetID, request.Action)
	if errors.Is(err, services.ErrInvalidSwipe) {
		http.Error(w, `{"error": "Invalid swipe request"}`, http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("❌ Failed to record swipe: %v", err)
		http.Error(w, `{"error": "Failed to record swipe"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// HandleGetSwipes - fetches all swipes recorded by an actor
func (c *SwipeController) HandleGetSwipes(w http.ResponseWriter, r *http.Request) {
	actorID := r.URL.Query().Get("actorId")
	if actorID == "" {
		http.Error(w, `{"error": "actorId is required"}`, http.StatusBadRequest)
		return
	}

	swipes, err := c.SwipeService.GetSwipesByActor(r.Context(), actorID)
	if err != nil {
		log.Printf("❌ Failed to fetch swipes: %v", err)
		http.Error(w, `{"error": "Failed to fetch swipes"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(swipes)
}
