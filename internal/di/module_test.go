package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/invoicehub/invoicehub/internal/app"
	"github.com/invoicehub/invoicehub/internal/config"
	"github.com/invoicehub/invoicehub/internal/domain/model"
	"github.com/invoicehub/invoicehub/internal/domain/repository"
	"github.com/invoicehub/invoicehub/internal/storage/postgres"
	"github.com/invoicehub/invoicehub/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		SessionSecret:   "secret",
		SessionTTL:      time.Minute,
		ShutdownTimeout: time.Millisecond,
		ViewCacheSize:   8,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	customerRepo := &test.CustomerRepositoryStub{Customers: []model.Customer{{ID: "cust-1"}}}
	invoiceRepo := &test.InvoiceRepositoryStub{}

	var facade *app.DashboardFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.CustomerRepository(customerRepo)),
			fx.Replace(repository.InvoiceRepository(invoiceRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected dashboard facade instance")
	}
}
