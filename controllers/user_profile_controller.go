package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"featur_server/models"
	"featur_server/services"

	"github.com/gorilla/mux"
)

// UserProfileController struct
type UserProfileController struct {
	UserProfileService *services.UserProfileService
}

// NewUserProfileController initializes the controller
func NewUserProfileController(service *services.UserProfileService) *UserProfileController {
	return &UserProfileController{UserProfileService: service}
}

// HandleAddUserProfile - creates a new user profile
func (c *UserProfileController) HandleAddUserProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	created, err := c.UserProfileService.AddUserProfile(r.Context(), profile)
	if errors.Is(err, services.ErrInvalidProfile) {
		http.Error(w, `{"error": "Invalid profile"}`, http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("❌ Failed to add profile: %v", err)
		http.Error(w, `{"error": "Failed to add profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// HandleGetUserProfile - fetches a user profile by id
func (c *UserProfileController) HandleGetUserProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.UserProfileService.GetUserProfile(r.Context(), userID)
	if errors.Is(err, services.ErrInvalidProfile) {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("❌ Failed to fetch profile: %v", err)
		http.Error(w, `{"error": "Failed to fetch profile"}`, http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// HandleUpdateUserProfile - applies field updates to an existing profile
func (c *UserProfileController) HandleUpdateUserProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var updates map[string]string
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	updated, err := c.UserProfileService.UpdateUserProfile(r.Context(), userID, updates)
	if errors.Is(err, services.ErrInvalidProfile) {
		http.Error(w, `{"error": "Invalid profile update"}`, http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("❌ Failed to update profile: %v", err)
		http.Error(w, `{"error": "Failed to update profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

// HandleDeleteUserProfile - removes a user profile
func (c *UserProfileController) HandleDeleteUserProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := c.UserProfileService.DeleteUserProfile(r.Context(), userID); err != nil {
		if errors.Is(err, services.ErrInvalidProfile) {
			http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
			return
		}
		log.Printf("❌ Failed to delete profile: %v", err)
		http.Error(w, `{"error": "Failed to delete profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success", "message": "Profile deleted"})
}
