package main

import (
	"cruisevoyager/config"
	"cruisevoyager/di"
	"cruisevoyager/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
