package internal

import (
	"fleetd/internal/controllers"
	"fleetd/internal/notify"
	"fleetd/internal/providers"
	"net/http"
)

func InitRoutes(apiController *controllers.ApiController, hub *notify.Hub) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/zones", http.HandlerFunc(apiController.GetZones))
	routers.Post("/zones", http.HandlerFunc(apiController.SaveZone))
	routers.Delete("/zones", http.HandlerFunc(apiController.DeleteZone))

	routers.Get("/vessels", http.HandlerFunc(apiController.GetVessels))
	routers.Get("/vessels/route", http.HandlerFunc(apiController.GetVesselRoute))

	routers.Get("/occupancy", http.HandlerFunc(apiController.GetOccupancy))
	routers.Get("/alerts", http.HandlerFunc(apiController.GetAlerts))
	routers.Get("/ws", http.HandlerFunc(hub.ServeWS))

	routers.Get("/draft", http.HandlerFunc(apiController.GetDraft))
	routers.Post("/draft/start", http.HandlerFunc(apiController.StartDraft))
	routers.Post("/draft/complete", http.HandlerFunc(apiController.CompleteDraft))
	routers.Post("/draft/confirm", http.HandlerFunc(apiController.ConfirmDraft))
	routers.Post("/draft/cancel", http.HandlerFunc(apiController.CancelDraft))
	return routers
}
