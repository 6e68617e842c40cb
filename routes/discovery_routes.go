package routes

import (
	"featur_server/controllers"
	"featur_server/services"

	"github.com/gorilla/mux"
)

// RegisterDiscoveryRoutes sets up routes for discovery-related operations under /api/discovery
func RegisterDiscoveryRoutes(r *mux.Router, discoveryService *services.DiscoveryService, profileService *services.UserProfileService, swipeService *services.SwipeService) {
	controller := controllers.NewDiscoveryController(discoveryService, profileService, swipeService)

	discoveryRouter := r.PathPrefix("/api/discovery").Subrouter()
	discoveryRouter.HandleFunc("", controller.HandleGetDiscoveryFeed).Methods("GET")
	discoveryRouter.HandleFunc("/featured", controller.HandleGetFeaturedCreators).Methods("GET")
}
