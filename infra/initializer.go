package infra

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Initialize .envがあれば環境変数に読み込む。無ければそのまま環境変数を使う
func Initialize() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found; using environment variables")
	}
}
