package routers

import (
	"meetslot-service/internal/app/delivery/http/controllers"
	"meetslot-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMeetingRoutes(router chi.Router, middlewares *middlewares.Middlewares, meetingController *controllers.MeetingController) {
	router.Get("/", meetingController.ListMeetings)
	router.With(middlewares.BookingLimiter).Post("/", meetingController.CreateMeeting)
	router.With(middlewares.ExportLimiter).Post("/calendar-export", meetingController.ExportCalendar)

	router.Post("/{meetingID}/accept", meetingController.AcceptMeeting)
	router.Post("/{meetingID}/reject", meetingController.RejectMeeting)
	router.Post("/{meetingID}/cancel", meetingController.CancelMeeting)
}
