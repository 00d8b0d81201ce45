package routers

import (
	"doctorsportal-service/internal/app/delivery/http/controllers"
	"doctorsportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, _ *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/token", authController.IssueToken)
}
