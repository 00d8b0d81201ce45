package routers

import (
	"doctorsportal-service/internal/app/delivery/http/controllers"
	"doctorsportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/", doctorController.FindAllDoctors)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/", doctorController.CreateDoctor)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Delete("/{id}", doctorController.DeleteDoctor)
}
