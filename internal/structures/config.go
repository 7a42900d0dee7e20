package structures

import (
	"net/http"
	"time"
)

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type UpstreamConfig struct {
	BaseURL  string        `yaml:"baseUrl" validate:"required|fullUrl"`
	Token    string        `yaml:"token"`
	Timeout  time.Duration `yaml:"timeout" validate:"required|min:1"`
	PageSize int           `yaml:"pageSize"`
}

type TrackerConfig struct {
	OwnerID     string        `yaml:"ownerId"`
	Interval    time.Duration `yaml:"interval" validate:"required|min:1"`
	StatePath   string        `yaml:"statePath" validate:"required|unixPath"`
	NoticeLimit int           `yaml:"noticeLimit"`
	AlertBuffer int           `yaml:"alertBuffer"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server         `yaml:"webServer"`
	Upstream  UpstreamConfig `yaml:"upstream"`
	Tracker   TrackerConfig  `yaml:"tracker"`
	Logger    LoggerConfig   `yaml:"logger"`
	Cache     CacheConfig    `yaml:"cache"`
	Metrics   MetricsConfig  `yaml:"metrics"`
}

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Url     string
	Handler http.Handler
}
