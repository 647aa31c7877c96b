package routes

import (
	"net/http"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Samuel-pydev/Spill-Zone-bck/auth"
	"github.com/Samuel-pydev/Spill-Zone-bck/handlers"
	"github.com/Samuel-pydev/Spill-Zone-bck/middleware"
	"github.com/Samuel-pydev/Spill-Zone-bck/monitoring"
	"github.com/Samuel-pydev/Spill-Zone-bck/repositories"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(
	authHandler *handlers.AuthHandler,
	feedHandler *handlers.FeedHandler,
	messageHandler *handlers.MessageHandler,
	reactionHandler *handlers.ReactionHandler,
	systemHandler *handlers.SystemHandler,
	tokens *auth.TokenService,
	users repositories.UserRepository,
	allowedOrigins []string,
) http.Handler {
	router := mux.NewRouter()

	// Open routes
	router.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	router.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/auth/user/{username}", authHandler.CheckUsername).Methods("GET")
	router.HandleFunc("/", systemHandler.Root).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Protected routes, registered after the open ones so those match first
	protected := router.NewRoute().Subrouter()
	protected.Use(middleware.Authenticate(tokens, users))
	protected.HandleFunc("/auth/me", authHandler.Me).Methods("GET")
	protected.HandleFunc("/feed", feedHandler.Create).Methods("POST")
	protected.HandleFunc("/feed", feedHandler.List).Methods("GET")
	protected.HandleFunc("/feed/{post_id}", feedHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/messages/send", messageHandler.Send).Methods("POST")
	protected.HandleFunc("/messages/inbox", messageHandler.Inbox).Methods("GET")
	protected.HandleFunc("/reactions/post/{post_id}", reactionHandler.Toggle).Methods("POST")

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(allowedOrigins),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		gorillahandlers.AllowCredentials(),
	)

	return cors(middleware.RequestLogger(monitoring.InstrumentHandler(router)))
}
