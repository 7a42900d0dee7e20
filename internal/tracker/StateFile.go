package tracker

import (
	"fleetd/internal/models"
	"fleetd/internal/providers"
	"fleetd/internal/tracker/interfaces"
	"os"
	"time"

	json "github.com/goccy/go-json"
)

// StateFile persists the tracker baseline (per-zone counts plus recent
// alerts) across restarts so an unchanged fleet does not re-alert after a
// daemon restart.
type StateFile struct {
	tracker    TrackerInterface
	alertLog   *models.AlertLog
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewStateFile(compressor interfaces.CompressorInterface, tracker TrackerInterface, alertLog *models.AlertLog, logger providers.Logger) *StateFile {
	return &StateFile{
		tracker:    tracker,
		alertLog:   alertLog,
		compressor: compressor,
		logger:     logger,
	}
}

func (f *StateFile) SaveToFile(fileName string) error {
	state := models.TrackerState{
		Counts:  f.tracker.Counts(),
		Alerts:  f.alertLog.GetData(),
		SavedAt: time.Now(),
	}

	jsonData, err := json.Marshal(state)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *StateFile) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	var state models.TrackerState
	if err := json.Unmarshal(decompressedData, &state); err != nil {
		return err
	}

	f.tracker.PutCounts(state.Counts)
	f.alertLog.PutData(state.Alerts)
	if !state.SavedAt.IsZero() {
		f.logger.Infof(providers.TypeApp, "Restored tracker state from %s (saved %s)", fileName, state.SavedAt.Format(time.RFC3339))
	}
	return nil
}

func (f *StateFile) Close() {
	f.compressor.Close()
}
