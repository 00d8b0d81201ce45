package routers

import (
	"doctorsportal-service/internal/app/delivery/http/controllers"
	"doctorsportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTreatmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, treatmentController *controllers.TreatmentController) {
	router.Get("/", treatmentController.FindAvailability)
	router.Get("/specialties", treatmentController.FindSpecialties)
	router.Get("/{name}/slots", treatmentController.FindSlots)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/", treatmentController.CreateTreatment)
}
