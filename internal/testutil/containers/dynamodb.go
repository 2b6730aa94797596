//go:build integration

package containers

import (
	"context"
	"fmt"
	"testing"

	"marketplace_trust/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// NewDynamoDBLocal starts amazon/dynamodb-local in memory and creates tables.
func NewDynamoDBLocal(t *testing.T, tables ...*dynamodb.CreateTableInput) *dynamodb.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "amazon/dynamodb-local:2.5.2",
			Cmd:          []string{"-jar", "DynamoDBLocal.jar", "-inMemory", "-sharedDb"},
			ExposedPorts: []string{"8000/tcp"},
			WaitingFor:   wait.ForListeningPort("8000/tcp"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start dynamodb-local: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get dynamodb-local host: %v", err)
	}
	port, err := container.MappedPort(ctx, "8000/tcp")
	if err != nil {
		t.Fatalf("failed to get dynamodb-local port: %v", err)
	}

	client, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
		Region:          "us-east-1",
		Endpoint:        fmt.Sprintf("http://%s:%s", host, port.Port()),
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	})
	if err != nil {
		t.Fatalf("failed to create dynamodb client: %v", err)
	}
	if err := database.EnsureTables(ctx, client, zap.NewNop(), tables...); err != nil {
		t.Fatalf("failed to create tables: %v", err)
	}
	return client
}
