package services

import (
	"context"
	"fleetd/internal/models"
	"fleetd/internal/providers"
	"fleetd/internal/structures"
	"fleetd/internal/tracker"
	"fleetd/internal/upstream"
	"fmt"

	"github.com/gookit/validate"
)

// ZoneInput is a create-or-update request for a zone. ID zero means create.
type ZoneInput struct {
	ID      int64          `json:"id"`
	Name    string         `json:"name" validate:"required"`
	Note    string         `json:"note"`
	Polygon models.Polygon `json:"polygon" validate:"required"`
}

type ZoneServiceInterface interface {
	ListZones(ctx context.Context) ([]models.Zone, error)
	SaveZone(ctx context.Context, input *ZoneInput) (*models.Zone, error)
	DeleteZone(ctx context.Context, zoneID int64) error
}

// ZoneService scopes every zone read and write to the configured owner and
// nudges the occupancy tracker after successful writes.
type ZoneService struct {
	config  *structures.Config
	logger  providers.Logger
	client  upstream.ClientInterface
	tracker tracker.TrackerInterface
}

func NewZoneService(config *structures.Config, logger providers.Logger, client upstream.ClientInterface, trk tracker.TrackerInterface) ZoneServiceInterface {
	return &ZoneService{
		config:  config,
		logger:  logger,
		client:  client,
		tracker: trk,
	}
}

func (zs *ZoneService) ListZones(ctx context.Context) ([]models.Zone, error) {
	return zs.client.ListZones(ctx, zs.config.Tracker.OwnerID, 0)
}

func (zs *ZoneService) SaveZone(ctx context.Context, input *ZoneInput) (*models.Zone, error) {
	if err := validateZoneInput(input); err != nil {
		return nil, err
	}

	zone := &models.Zone{
		ID:      input.ID,
		OwnerID: zs.config.Tracker.OwnerID,
		Name:    input.Name,
		Note:    input.Note,
		Polygon: input.Polygon,
	}

	saved, err := zs.client.SaveZone(ctx, zone)
	if err != nil {
		zs.logger.Errorf(providers.TypeApp, "Saving zone %q failed: %s", input.Name, err)
		return nil, err
	}

	zs.logger.Infof(providers.TypeApp, "Zone %q saved (id=%d)", saved.Name, saved.ID)
	zs.tracker.TriggerRefresh()
	return saved, nil
}

func (zs *ZoneService) DeleteZone(ctx context.Context, zoneID int64) error {
	if err := zs.client.DeleteZone(ctx, zoneID, zs.config.Tracker.OwnerID); err != nil {
		zs.logger.Errorf(providers.TypeApp, "Deleting zone %d failed: %s", zoneID, err)
		return err
	}

	zs.logger.Infof(providers.TypeApp, "Zone %d deleted", zoneID)
	zs.tracker.TriggerRefresh()
	return nil
}

func validateZoneInput(input *ZoneInput) error {
	v := validate.Struct(input)
	if !v.Validate() {
		return fmt.Errorf("%w: %s", ErrValidation, v.Errors.One())
	}
	if !input.Polygon.IsValid() {
		return fmt.Errorf("%w: polygon needs at least %d distinct vertices", ErrValidation, models.MinPolygonVertices)
	}
	return nil
}
