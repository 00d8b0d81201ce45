package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
	// WorkerStop, if set, is called during Shutdown to stop the notification
	// worker before the broker connection closes.
	WorkerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WorkerStop != nil {
		b.WorkerStop()
		log.Println("Successfully stopped notification worker")
	}

	if err := b.RabbitMQ.Close(); err != nil {
		return err
	}
	log.Println("Successfully closed RabbitMQ")

	if err := b.Redis.Close(); err != nil {
		return err
	}
	log.Println("Successfully closed Redis")

	if err := b.MongoDB.Disconnect(ctx); err != nil {
		return err
	}
	log.Println("Successfully closed MongoDB")

	b.Logger.Sync()

	return nil
}
