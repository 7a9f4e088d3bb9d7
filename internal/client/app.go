package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-vault/internal/cli"
	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/internal/store"
	"github.com/MKhiriev/go-note-vault/models"
)

type App struct {
	root *cobra.Command
}

// NewApp wires the command tree to the terminal, the system clipboard and
// the file-backed vault services.
func NewApp(build models.AppBuildInfo) *App {
	return newApp(cli.Options{
		Services:  newClientServices,
		Prompter:  cli.NewTerminalPrompter(os.Stdin, os.Stderr),
		Clipboard: cli.NewSystemClipboard(),
		Build:     build,
	})
}

func newApp(opts cli.Options) *App {
	return &App{root: cli.NewRootCommand(opts)}
}

// Run executes the command named by args.
func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

func newClientServices(cfg *config.ClientConfig, log *logger.Logger) (*service.ClientServices, error) {
	storages, err := store.NewClientStorages(cfg.Storage, log.WithComponent("store"))
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	return service.NewClientServices(storages, cfg.Storage.VaultPath, log), nil
}
