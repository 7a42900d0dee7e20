package providers

import (
	"fleetd/internal/structures"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "FLEETD_LOG_LEVEL")
	viper.BindEnv("tracker.interval", "FLEETD_TRACKER_INTERVAL")
	viper.BindEnv("tracker.ownerId", "FLEETD_OWNER_ID")
	viper.BindEnv("upstream.baseUrl", "FLEETD_UPSTREAM_URL")
	viper.BindEnv("upstream.token", "FLEETD_UPSTREAM_TOKEN")
	viper.BindEnv("cache.enabled", "FLEETD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "FLEETD_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "FleetZoneWatch"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
