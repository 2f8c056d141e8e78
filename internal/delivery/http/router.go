package http_delivery

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	event_handler "eventsphere-api/internal/delivery/http/event"
	post_handler "eventsphere-api/internal/delivery/http/post"
	user_handler "eventsphere-api/internal/delivery/http/user"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/metrics"
	"eventsphere-api/internal/middleware"
)

const requestTimeout = 60 * time.Second

// NewRouter assembles the public API surface. Uploaded avatars are served
// statically from uploadsDir under /uploads.
func NewRouter(
	postHandler *post_handler.Handler,
	userHandler *user_handler.Handler,
	eventHandler *event_handler.Handler,
	uploadsDir string,
	log *logger.Logger,
	metricsProvider metrics.MetricsProvider,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chi_middleware.RequestID)
	r.Use(chi_middleware.RealIP)
	r.Use(chi_middleware.Recoverer)
	r.Use(chi_middleware.Timeout(requestTimeout))
	r.Use(middleware.Logging(log))
	r.Use(middleware.Metrics(metricsProvider))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/registerUser", userHandler.Register)
	r.Post("/login", userHandler.Login)
	r.Post("/logout", userHandler.Logout)
	r.Put("/updateUserProfile/{email}", userHandler.UpdateProfile)

	r.Post("/savePost", postHandler.SavePost)
	r.Get("/getPosts", postHandler.GetPosts)
	r.Put("/likePost/{postId}", postHandler.ToggleLike)

	r.Post("/addEvent", eventHandler.AddEvent)
	r.Get("/events", eventHandler.ListEvents)
	r.Get("/events/{id}", eventHandler.GetEvent)
	r.Delete("/deleteEvent/{id}", eventHandler.DeleteEvent)

	fileServer := http.FileServer(http.Dir(uploadsDir))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", fileServer))

	return r
}
