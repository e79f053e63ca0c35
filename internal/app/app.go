package app

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/maryamb/redirector/internal/config"
	"github.com/maryamb/redirector/internal/handler"
	"github.com/maryamb/redirector/internal/service"
	"github.com/maryamb/redirector/internal/storage/memory"
)

type App struct {
	config  *config.Config
	handler http.Handler
}

// NewApp wires a single shared storage instance through the service into
// the HTTP handler. State lives in memory and is lost on restart.
func NewApp(cfg *config.Config) *App {
	store := memory.NewStorage()

	redirectService := service.NewRedirectService(store)

	httpHandler := handler.NewHandler(redirectService)

	return &App{
		config:  cfg,
		handler: httpHandler.RegisterRoutes(),
	}
}

func (a *App) Run() error {
	log.Info().Str("address", a.config.ServerAddress).Msg("Starting server")
	return http.ListenAndServe(a.config.ServerAddress, a.handler)
}
