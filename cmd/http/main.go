package main

import (
	"context"
	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/delivery/http/controllers"
	"doctorsportal-service/internal/app/delivery/http/middlewares"
	"doctorsportal-service/internal/app/delivery/http/routers"
	"doctorsportal-service/internal/app/drivers/database"
	"doctorsportal-service/internal/app/drivers/logger"
	driverMailer "doctorsportal-service/internal/app/drivers/mailer"
	"doctorsportal-service/internal/app/drivers/messaging"
	driverStorage "doctorsportal-service/internal/app/drivers/storage"
	"doctorsportal-service/internal/app/services/core/auth"
	"doctorsportal-service/internal/app/services/core/bookings"
	"doctorsportal-service/internal/app/services/core/doctors"
	"doctorsportal-service/internal/app/services/core/notifications"
	"doctorsportal-service/internal/app/services/core/payments"
	"doctorsportal-service/internal/app/services/core/treatments"
	"doctorsportal-service/internal/app/services/core/users"
	"doctorsportal-service/internal/app/services/shared/mailer"
	"doctorsportal-service/internal/app/services/shared/payment_gateway"
	"doctorsportal-service/internal/app/services/shared/redis"
	"doctorsportal-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(&bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()
	logrus.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Failed to close drivers: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	smtpClient := driverMailer.NewSMTPClient(bootstrap.DriverConfig)
	mailerService := mailer.NewMailerService(smtpClient)
	minioClient := driverStorage.NewMinio(bootstrap.DriverConfig)
	minioStorage := storage.NewMinioStorage(minioClient)
	stripeService := payment_gateway.NewStripeService(bootstrap.InternalConfig)

	// Notifications
	notificationPublisher, err := notifications.NewRabbitMQPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.App.NotificationQueue,
		bootstrap.Logger,
	)
	if err != nil {
		logrus.Fatalf("Failed to set up notification publisher: %v", err)
	}

	worker, err := notifications.NewWorker(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.App.NotificationQueue,
		bootstrap.InternalConfig.App.NotificationEmailsPerSec,
		mailerService,
		bootstrap.Logger,
	)
	if err != nil {
		logrus.Fatalf("Failed to set up notification worker: %v", err)
	}
	if err := worker.Start(context.Background()); err != nil {
		logrus.Fatalf("Failed to start notification worker: %v", err)
	}
	bootstrap.WorkerStop = worker.Stop

	// Treatment
	treatmentMongoRepository := treatments.NewTreatmentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Booking
	bookingMongoRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	bookingUsecase := bookings.NewBookingUsecase(bookingMongoRepository, treatmentMongoRepository, notificationPublisher, bootstrap.Logger)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase)

	treatmentUsecase := treatments.NewTreatmentUsecase(treatmentMongoRepository, bookingMongoRepository, redisRepository, bootstrap.Logger)
	treatmentController := controllers.NewTreatmentController(bootstrap.Logger, treatmentUsecase)

	// Payment
	paymentMongoRepository := payments.NewPaymentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	paymentUsecase := payments.NewPaymentUsecase(paymentMongoRepository, bookingMongoRepository, stripeService, bootstrap.InternalConfig, bootstrap.Logger)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase)

	// User
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	userUsecase := users.NewUserUsecase(userMongoRepository, bootstrap.Logger)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Doctor
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, treatmentMongoRepository, minioStorage, bootstrap.InternalConfig, bootstrap.Logger)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, userMongoRepository, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		treatmentController,
		bookingController,
		paymentController,
		authController,
		userController,
		doctorController,
	)
}
