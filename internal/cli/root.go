// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/models"
)

const (
	appName = "notevault"

	// skipSetupAnnotation marks commands that run without config or services.
	skipSetupAnnotation = "notevault/skip-setup"
)

// ServicesFactory builds the client services once the configuration is
// known.
type ServicesFactory func(cfg *config.ClientConfig, log *logger.Logger) (*service.ClientServices, error)

// Options are the dependencies of the command tree.
type Options struct {
	Services  ServicesFactory
	Prompter  Prompter
	Clipboard Clipboard
	Build     models.AppBuildInfo
}

type cli struct {
	opts Options

	cfg      *config.ClientConfig
	log      *logger.Logger
	services *service.ClientServices
}

// NewRootCommand assembles the notevault command tree.
func NewRootCommand(opts Options) *cobra.Command {
	c := &cli{opts: opts, log: logger.Nop()}

	root := &cobra.Command{
		Use:   appName,
		Short: "NoteVault - an encrypted notebook in a single file",
		Long: `NoteVault keeps titled notes in one password-protected file.

The vault is encrypted with AES-256 under a key derived from the master
password. Every command that reads or changes notes asks for the password.

Examples:
  # Create a new vault
  notevault init

  # Add a note and list the vault
  notevault add --title "wifi" --message "hunter2"
  notevault list`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		c.newInitCommand(),
		c.newListCommand(),
		c.newShowCommand(),
		c.newAddCommand(),
		c.newEditCommand(),
		c.newRemoveCommand(),
		c.newPasswdCommand(),
		c.newCopyCommand(),
		c.newGenpassCommand(),
		c.newVersionCommand(),
	)

	return root
}

// setup resolves configuration, the logger and the services for the command
// about to run, and stores the logger in the command context.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[skipSetupAnnotation] != "" {
		return nil
	}

	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidAppConfigs, err)
	}
	c.cfg = cfg
	c.log = logger.NewClientLogger(appName, cfg.App.LogFile, level).WithComponent(cmd.Name())
	cmd.SetContext(c.log.WithContext(cmd.Context()))

	if c.opts.Services == nil {
		return errors.New("no services factory configured")
	}
	services, err := c.opts.Services(cfg, c.log)
	if err != nil {
		return fmt.Errorf("create client services: %w", err)
	}
	c.services = services

	c.log.Debug().Str("vault", cfg.Storage.VaultPath).Msg("command started")
	return nil
}

// RenderError formats err for the terminal. Errors without a dedicated
// message also show their text.
func RenderError(err error) string {
	msg := app.ErrorMessage(err)
	if msg == app.MsgUnexpected {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return errorStyle.Render("error: " + msg)
}
