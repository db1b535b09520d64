package routers

import (
	"meetslot-service/internal/app/delivery/http/controllers"
	"meetslot-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, middlewares *middlewares.Middlewares, availabilityController *controllers.AvailabilityController) {
	router.Put("/", availabilityController.SaveAvailability)
	router.Put("/time-gap", availabilityController.SetTimeGap)

	router.Route("/days/{day}", func(r chi.Router) {
		r.Patch("/", availabilityController.SetDayAvailable)
		r.Post("/copy", availabilityController.CopyDay)
		r.Post("/slots", availabilityController.AddSlot)
		r.Put("/slots/{index}", availabilityController.UpdateSlot)
		r.Delete("/slots/{index}", availabilityController.RemoveSlot)
	})

	router.Get("/{userID}", availabilityController.GetAvailability)
	router.Get("/{userID}/openings", availabilityController.GetOpenings)
	router.With(middlewares.BookingLimiter).Post("/{userID}/check", availabilityController.CheckBooking)
}
