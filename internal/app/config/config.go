package config

import (
	"doctorsportal-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "doctorsPortal"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", "noreply@doctorsportal.example"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "doctor-photos"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":5000"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:          utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			NotificationQueue:        utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "booking-confirmations"),
			NotificationEmailsPerSec: utils.GetEnvInt("APP_NOTIFICATION_EMAILS_PER_SECOND", 5),
			DoctorPhotoBucket:        utils.GetEnvString("APP_DOCTOR_PHOTO_BUCKET", "doctor-photos"),
		},
		JWT: JWT{
			Secret:        utils.MustGetEnvString("JWT_SECRET"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Stripe: Stripe{
			SecretKey: utils.MustGetEnvString("STRIPE_SECRET_KEY"),
			BaseUrl:   utils.GetEnvString("STRIPE_BASE_URL", "https://api.stripe.com"),
			Currency:  utils.GetEnvString("STRIPE_CURRENCY", "usd"),
		},
	}
}
