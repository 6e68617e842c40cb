package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"featur_server/services"
)

// MediaController struct
type MediaController struct {
	MediaService *services.MediaService
}

// NewMediaController initializes the controller
func NewMediaController(service *services.MediaService) *MediaController {
	return &MediaController{MediaService: service}
}

// HandleGenerateUploadURL - hands out a presigned upload URL for profile media
func (c *MediaController) HandleGenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.FileName == "" || request.FileType == "" {
		http.Error(w, `{"error": "fileName and fileType are required"}`, http.StatusBadRequest)
		return
	}

	uploadURL, key, err := c.MediaService.GenerateUploadURL(r.Context(), request.FileName, request.FileType)
	if err != nil {
		log.Printf("❌ Failed to generate upload URL: %v", err)
		http.Error(w, `{"error": "Failed to generate upload URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"uploadUrl": uploadURL, "key": key})
}

// HandleGenerateReadURL - hands out a presigned read URL for stored media
func (c *MediaController) HandleGenerateReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, `{"error": "key is required"}`, http.StatusBadRequest)
		return
	}

	readURL, err := c.MediaService.GenerateReadURL(r.Context(), key)
	if err != nil {
		log.Printf("❌ Failed to generate read URL: %v", err)
		http.Error(w, `{"error": "Failed to generate read URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"readUrl": readURL})
}
