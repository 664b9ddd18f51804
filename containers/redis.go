package containers

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const redisImage = "redis:7.2-alpine"

type RedisContainer struct {
	container testcontainers.Container
}

func NewRedisContainer() *RedisContainer {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        redisImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(10 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		logrus.Fatalf("error starting redis container: %v", err)
	}

	return &RedisContainer{container: container}
}

func (c *RedisContainer) Shutdown() {
	if err := c.container.Terminate(context.Background()); err != nil {
		logrus.Fatalf("error terminating redis container: %v", err)
	}
}

// URL is a redis:// url for database 0.
func (c *RedisContainer) URL() string {
	endpoint, err := c.container.Endpoint(context.Background(), "")
	if err != nil {
		logrus.Fatalf("error getting redis endpoint: %v", err)
	}
	return fmt.Sprintf("redis://%s/0", endpoint)
}
