package routers

import (
	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/delivery/http/controllers"
	"doctorsportal-service/internal/app/delivery/http/middlewares"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	treatmentController *controllers.TreatmentController,
	bookingController *controllers.BookingController,
	paymentController *controllers.PaymentController,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	doctorController *controllers.DoctorController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("doctors portal is running"))
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/treatments", func(r chi.Router) {
				attachTreatmentRoutes(r, middlewares, treatmentController)
			})

			r.Route("/bookings", func(r chi.Router) {
				attachBookingRoutes(r, middlewares, bookingController)
			})

			r.Route("/payments", func(r chi.Router) {
				attachPaymentRoutes(r, middlewares, paymentController)
			})

			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, doctorController)
			})
		})
	})
}
