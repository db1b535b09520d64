package routers

import (
	"fmt"
	"meetslot-service/internal/app/config"
	"meetslot-service/internal/app/delivery/http/controllers"
	"meetslot-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	availabilityController *controllers.AvailabilityController,
	meetingController *controllers.MeetingController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.CreateRateLimiter())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Use(middlewares.ViewerIdentity)

			r.Route("/availability", func(r chi.Router) {
				attachAvailabilityRoutes(r, middlewares, availabilityController)
			})

			r.Route("/meetings", func(r chi.Router) {
				attachMeetingRoutes(r, middlewares, meetingController)
			})
		})
	})
}

func allowedOrigins(internalConfig *config.InternalConfig) []string {
	if internalConfig.App.FrontendDomain == "" {
		return []string{"*"}
	}
	return []string{internalConfig.App.FrontendDomain}
}
