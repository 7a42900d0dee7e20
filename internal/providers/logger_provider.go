package providers

import (
	"fleetd/internal/structures"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
)

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

func GetLogTypeByRequestType(method string) TypeEnum {
	if method == http.MethodPost {
		return TypePost
	}
	return TypeGet
}

var logFileNames = map[TypeEnum]string{
	TypeApp:  "app.log",
	TypeGet:  "access_get.log",
	TypePost: "access_post.log",
}

type zeroLogger struct {
	loggers map[TypeEnum]zerolog.Logger
	files   []*os.File
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}

	zl := &zeroLogger{loggers: make(map[TypeEnum]zerolog.Logger, len(logFileNames))}
	for t, name := range logFileNames {
		path := filepath.Join(conf.Logger.Dir, name)
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, os.FileMode(conf.Logger.Mode))
		if err != nil {
			zl.Close()
			return nil, err
		}
		zl.files = append(zl.files, file)

		var w zerolog.LevelWriter = zerolog.MultiLevelWriter(file)
		if conf.Debug {
			w = zerolog.MultiLevelWriter(file, zerolog.ConsoleWriter{Out: os.Stderr})
		}
		zl.loggers[t] = zerolog.New(w).Level(level).With().Timestamp().Logger()
	}
	return zl, nil
}

func (z *zeroLogger) Errorf(t TypeEnum, format string, args ...interface{}) {
	l := z.loggers[t]
	l.Error().Msgf(format, args...)
}

func (z *zeroLogger) Warnf(t TypeEnum, format string, args ...interface{}) {
	l := z.loggers[t]
	l.Warn().Msgf(format, args...)
}

func (z *zeroLogger) Debugf(t TypeEnum, format string, args ...interface{}) {
	l := z.loggers[t]
	l.Debug().Msgf(format, args...)
}

func (z *zeroLogger) Infof(t TypeEnum, format string, args ...interface{}) {
	l := z.loggers[t]
	l.Info().Msgf(format, args...)
}

func (z *zeroLogger) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l := z.loggers[t]
	l.Fatal().Msgf(format, args...)
}

func (z *zeroLogger) Close() {
	for _, f := range z.files {
		_ = f.Close()
	}
}
