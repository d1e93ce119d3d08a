package infra

import (
	"io"
	"os"

	"grocery-recipe/config"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogger logrusを設定する。LOG_FILEがあれば標準出力とローテーションするファイルの両方に出す
func SetupLogger(cfg *config.Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "invalid LOG_LEVEL")
	}
	logrus.SetLevel(level)

	switch cfg.LogFormat {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return errors.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    20, // MB
			MaxBackups: 2,
			MaxAge:     10, // 日
		})
	}
	logrus.SetOutput(out)
	return nil
}
