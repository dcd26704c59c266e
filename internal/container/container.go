package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/records-api/config"
	"github.com/oksasatya/records-api/internal/infrastructure/postgres"
	"github.com/oksasatya/records-api/pkg/helpers"
)

// Container holds the process-wide components built once in main and
// handed to the router. Redis and Mail are nil when disabled.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Pool   *postgres.Pool
	Redis  *redis.Client
	JWT    *helpers.JWTManager
	Mail   *helpers.RabbitPublisher
}

// Close releases everything the container owns, publisher first.
func (c *Container) Close() {
	c.Mail.Close()
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}
