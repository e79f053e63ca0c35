package main

import (
	"log"

	"github.com/maryamb/redirector/internal/app"
	"github.com/maryamb/redirector/internal/config"
	"github.com/maryamb/redirector/internal/logger"
)

func main() {
	cfg := config.NewConfig()

	logger.InitLogger(cfg.LogLevel)

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		log.Fatalf("Error running application: %v", err)
	}
}
