package main

import (
	"backoffice/config"
	"backoffice/di"
	"backoffice/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
