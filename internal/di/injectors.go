//go:build wireinject
// +build wireinject

package di

import (
	"fleetd/internal"
	"fleetd/internal/controllers"
	"fleetd/internal/notify"
	"fleetd/internal/providers"
	"fleetd/internal/services"
	"fleetd/internal/structures"
	"fleetd/internal/tracker"
	"fleetd/internal/upstream"

	wire "github.com/google/wire"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		notify.NewAlertLog,
		notify.NewHub,
		wire.Bind(new(notify.NotifierInterface), new(*notify.Hub)),

		upstream.NewClient,
		tracker.NewTracker,
		tracker.NewZstdCompressor,
		tracker.NewStateFile,
		tracker.NewScheduler,
		services.NewZoneService,
		services.NewDraftWorkflow,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
