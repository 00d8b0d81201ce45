package routers

import (
	"doctorsportal-service/internal/app/delivery/http/controllers"
	"doctorsportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.With(middlewares.Authenticate).Post("/intent", paymentController.CreatePaymentIntent)
	router.With(middlewares.Authenticate).Post("/", paymentController.RecordPayment)
}
