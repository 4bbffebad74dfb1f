//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"spa-pos/cmd/bootstrap"
	"spa-pos/cmd/bootstrap/components"
	"spa-pos/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Application wiring for e2e runs
// Returns router, config, registry and fx.App for lifecycle management
// ------------------------------------------------------------
func buildE2EApp(backendURL string) (*gin.Engine, config.Config, *prometheus.Registry, *fx.App) {
	var (
		router   *gin.Engine
		cfg      config.Config
		registry *prometheus.Registry
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			return createTestConfig(backendURL)
		}),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		bootstrap.JWTModule,
		components.StoreModule,
		components.BackendModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg, &registry),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return router, cfg, registry, app
}

func createTestConfig(backendURL string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Backend.BaseURL = backendURL + "/api"
	return testConfig
}

// ------------------------------------------------------------
// Shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router   *gin.Engine
	Config   config.Config
	Registry *prometheus.Registry
	Backend  *FakeBackend
	app      *fx.App
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s.Backend = NewFakeBackend()
	s.Router, s.Config, s.Registry, s.app = buildE2EApp(s.Backend.URL)
	require.NotNil(t, s.Router, "router setup failed")
	require.NotEmpty(t, s.Config, "config not populated")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) TearDownSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.app.Stop(ctx); err != nil {
		slog.Warn("failed to stop fx app", "error", err.Error())
	}
	s.Backend.Close()
}

func (s *SharedSuite) SetupSubTest() {
	s.Backend.Reset()
}

// Credentials the fake backend accepts.
func (s *SharedSuite) Credentials() (username, password string) {
	return backendUser, backendPassword
}
