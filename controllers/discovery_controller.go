package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"featur_server/services"
)

// DiscoveryController wires profile lookup, swipe history, and ranking into
// the discovery feed endpoint.
type DiscoveryController struct {
	DiscoveryService *services.DiscoveryService
	ProfileService   *services.UserProfileService
	SwipeService     *services.SwipeService
}

// NewDiscoveryController initializes the controller
func NewDiscoveryController(discovery *services.DiscoveryService, profiles *services.UserProfileService, swipes *services.SwipeService) *DiscoveryController {
	return &DiscoveryController{
		DiscoveryService: discovery,
		ProfileService:   profiles,
		SwipeService:     swipes,
	}
}

// HandleGetDiscoveryFeed - returns ranked candidates the user has not yet evaluated
func (c *DiscoveryController) HandleGetDiscoveryFeed(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}

	limit := 20
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed <= 0 {
			http.Error(w, `{"error": "limit must be a positive integer"}`, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	profile, err := c.ProfileService.GetUserProfile(r.Context(), userID)
	if err != nil {
		log.Printf("❌ Failed to fetch profile for discovery: %v", err)
		http.Error(w, `{"error": "Failed to fetch profile"}`, http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
		return
	}

	excluded, err := c.SwipeService.GetEvaluatedTargets(r.Context(), userID)
	if err != nil {
		log.Printf("❌ Failed to fetch evaluated targets: %v", err)
		http.Error(w, `{"error": "Failed to fetch swipe history"}`, http.StatusInternalServerError)
		return
	}

	feed, err := c.DiscoveryService.GetDiscoveryFeed(r.Context(), *profile, limit, excluded)
	if err != nil {
		log.Printf("❌ Failed to build discovery feed: %v", err)
		http.Error(w, `{"error": "Failed to build discovery feed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(feed)
}

// HandleGetFeaturedCreators - returns verified creators by follower count
func (c *DiscoveryController) HandleGetFeaturedCreators(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed <= 0 {
			http.Error(w, `{"error": "limit must be a positive integer"}`, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	creators, err := c.DiscoveryService.GetFeaturedCreators(r.Context(), limit)
	if err != nil {
		log.Printf("❌ Failed to fetch featured creators: %v", err)
		http.Error(w, `{"error": "Failed to fetch featured creators"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(creators)
}
