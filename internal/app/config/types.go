package config

type (
	InternalConfig struct {
		App    App
		JWT    JWT
		Stripe Stripe
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		SMTP     SMTP
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                      string
		Port                     string
		Version                  string
		EndpointPrefix           string
		MaxRequests              int
		ShutdownTimeout          int
		NotificationQueue        string
		NotificationEmailsPerSec int
		DoctorPhotoBucket        string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Stripe struct {
		SecretKey string
		BaseUrl   string
		Currency  string
	}
)
