package testing

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const mongoImage = "mongo:7"

type MongoContainer struct {
	Container testcontainers.Container
	URI       string
}

func NewMongoContainer(ctx context.Context, tb testing.TB) *MongoContainer {
	tb.Helper()

	mongoContainer, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		tb.Fatalf("failed to start mongo container: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(mongoContainer); err != nil {
			tb.Logf("failed to terminate mongo container: %v", err)
		}
	})

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		tb.Fatalf("failed to get mongo connection string: %v", err)
	}

	return &MongoContainer{
		Container: mongoContainer,
		URI:       uri,
	}
}
