// Package cli implements the interactive client for the diary service: a
// small REPL that talks to the REST API.
package cli

import (
	"bufio"
	"context"
	"os"

	"diary/internal/client/api"
	"diary/internal/client/config"
)

type App struct {
	config *config.Config
	api    *api.Client
	email  string
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		api:    api.New(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.api.LoggedIn()
}
