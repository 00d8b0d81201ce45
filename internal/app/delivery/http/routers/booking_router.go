package routers

import (
	"doctorsportal-service/internal/app/delivery/http/controllers"
	"doctorsportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.With(middlewares.Authenticate).Get("/", bookingController.FindBookings)
	router.With(middlewares.Authenticate).Get("/{id}", bookingController.FindBookingByID)
	router.With(middlewares.Authenticate).Post("/", bookingController.SubmitBooking)
}
