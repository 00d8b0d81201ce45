package routers

import (
	"doctorsportal-service/internal/app/delivery/http/controllers"
	"doctorsportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Post("/", userController.UpsertUser)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/", userController.FindAllUsers)
	router.With(middlewares.Authenticate).Get("/admin/{email}", userController.CheckAdmin)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Put("/admin/{id}", userController.GrantAdmin)
}
