package providers

import (
	"fleetd/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Upstream: structures.UpstreamConfig{
			BaseURL: "https://ais.example.com/api",
			Timeout: 10 * time.Second,
		},
		Tracker: structures.TrackerConfig{
			Interval:  3 * time.Minute,
			StatePath: "/tmp/fleetd.dat",
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_MissingUpstreamURL(t *testing.T) {
	c := validConfig()
	c.Upstream.BaseURL = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_BadUpstreamURL(t *testing.T) {
	c := validConfig()
	c.Upstream.BaseURL = "not a url"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroTrackerInterval(t *testing.T) {
	c := validConfig()
	c.Tracker.Interval = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyStatePath(t *testing.T) {
	c := validConfig()
	c.Tracker.StatePath = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyOwnerIsAllowed(t *testing.T) {
	// owner id may arrive later via environment, startup must not fail
	c := validConfig()
	c.Tracker.OwnerID = ""
	v := NewCnfValidator(c)
	assert.NoError(t, v.Validate())
}
