package routes

import (
	"featur_server/controllers"
	"featur_server/services"

	"github.com/gorilla/mux"
)

// RegisterMediaRoutes sets up routes for media-related operations under /api/media
func RegisterMediaRoutes(r *mux.Router, mediaService *services.MediaService) {
	controller := controllers.NewMediaController(mediaService)

	mediaRouter := r.PathPrefix("/api/media").Subrouter()
	mediaRouter.HandleFunc("/upload-url", controller.HandleGenerateUploadURL).Methods("POST")
	mediaRouter.HandleFunc("/read-url", controller.HandleGenerateReadURL).Methods("GET")
}
