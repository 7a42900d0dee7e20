package notify

import (
	"fleetd/internal/models"
	"fleetd/internal/structures"
)

func NewAlertLog(conf *structures.Config) *models.AlertLog {
	return models.NewAlertLog(conf.Tracker.AlertBuffer)
}
