package db

import (
	"context"
	"errors"
	"testing"

	"github.com/yigit/uniregistry/internal/config"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
)

func connectConfig(driver, uri string) *config.Config {
	cfg := &config.Config{}
	cfg.Database.Driver = driver
	cfg.Database.URI = uri
	cfg.Database.Name = "test"
	cfg.Database.ConnectTimeout = "1s"
	return cfg
}

func TestConnect(t *testing.T) {
	ctx := context.Background()

	t.Run("memory driver", func(t *testing.T) {
		gateway, err := Connect(ctx, connectConfig("Memory", ""))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer gateway.Close(ctx)

		if gateway.Driver() != DriverMemory {
			t.Errorf("expected driver %q, got %q", DriverMemory, gateway.Driver())
		}
		if err := gateway.Ping(ctx); err != nil {
			t.Errorf("expected ping to succeed, got %v", err)
		}
	})

	t.Run("unreachable mongo fails the liveness check", func(t *testing.T) {
		gateway, err := Connect(ctx, connectConfig(DriverMongo, "mongodb://127.0.0.1:1"))
		if gateway != nil {
			t.Errorf("expected nil gateway, got %+v", gateway)
		}
		if !errors.Is(err, apperrors.ErrConnection) {
			t.Errorf("expected connection error, got %v", err)
		}
	})

	t.Run("unsupported driver", func(t *testing.T) {
		gateway, err := Connect(ctx, connectConfig("cassandra", "cassandra://localhost"))
		if gateway != nil {
			t.Errorf("expected nil gateway, got %+v", gateway)
		}
		if !errors.Is(err, ErrUnsupportedDriver) {
			t.Errorf("expected unsupported driver error, got %v", err)
		}
		if errors.Is(err, apperrors.ErrConnection) {
			t.Errorf("expected a configuration error, got connection error %v", err)
		}
	})
}
