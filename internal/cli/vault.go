package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/models"
)

const (
	promptPassword        = "Master password: "
	promptNewPassword     = "New master password: "
	promptConfirmPassword = "Repeat master password: "
	promptMessage         = "Message: "
)

// withVault unlocks the vault, runs fn and saves the notes if fn changed
// them. The session is closed on every path.
func (c *cli) withVault(cmd *cobra.Command, fn func(vault service.ClientVaultService) error) error {
	ctx := cmd.Context()
	vault := c.services.VaultService

	password, err := c.opts.Prompter.ReadPassword(promptPassword)
	if err != nil {
		return err
	}
	if err := vault.Open(ctx, password); err != nil {
		return err
	}
	defer vault.Close()

	if err := fn(vault); err != nil {
		return err
	}

	if vault.IsDirty() {
		if err := vault.Save(ctx); err != nil {
			return err
		}
		logger.FromContext(ctx).Debug().Msg("vault saved")
	}
	return nil
}

// readNewPassword asks for a password twice.
func (c *cli) readNewPassword(prompt string) (string, error) {
	password, err := c.opts.Prompter.ReadPassword(prompt)
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", service.ErrEmptyPassword
	}

	confirm, err := c.opts.Prompter.ReadPassword(promptConfirmPassword)
	if err != nil {
		return "", err
	}
	if confirm != password {
		return "", app.ErrPasswordMismatch
	}
	return password, nil
}

func parseNoteID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", app.ErrInvalidNoteID, arg)
	}
	return id, nil
}

func printNoteLine(w io.Writer, note models.Note) {
	fmt.Fprintf(w, "%s  %s\n", idStyle.Render(strconv.FormatUint(note.ID, 10)), note.Title)
}

func (c *cli) newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a new empty vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vault := c.services.VaultService

			password, err := c.readNewPassword(promptPassword)
			if err != nil {
				return err
			}
			if err := vault.Create(cmd.Context(), password); err != nil {
				return err
			}
			defer vault.Close()

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("created "+vault.Path()))
			return nil
		},
	}
}

func (c *cli) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List note ids and titles",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withVault(cmd, func(vault service.ClientVaultService) error {
				list, err := vault.Notes()
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(list) == 0 {
					fmt.Fprintln(out, helpStyle.Render("vault is empty"))
					return nil
				}
				for _, note := range list {
					printNoteLine(out, note)
				}
				return nil
			})
		},
	}
}

func (c *cli) newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}

			return c.withVault(cmd, func(vault service.ClientVaultService) error {
				note, err := vault.Note(id)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, titleStyle.Render(note.Title))
				fmt.Fprintln(out, messageStyle.Render(note.Message))
				return nil
			})
		},
	}
}

func (c *cli) newAddCommand() *cobra.Command {
	var title, message string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note",
		Long: `Adds a note to the vault. The message is asked for when --message is not
given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withVault(cmd, func(vault service.ClientVaultService) error {
				if !cmd.Flags().Changed("message") {
					var err error
					if message, err = c.opts.Prompter.ReadLine(promptMessage); err != nil {
						return err
					}
				}

				note, err := vault.AddNote(title, message)
				if err != nil {
					return err
				}
				logger.FromContext(cmd.Context()).Info().Uint64("id", note.ID).Msg("note added")

				fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("added note %d", note.ID)))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&message, "message", "m", "", "note message")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func (c *cli) newEditCommand() *cobra.Command {
	var title, message string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title or message of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}

			return c.withVault(cmd, func(vault service.ClientVaultService) error {
				note, err := vault.Note(id)
				if err != nil {
					return err
				}

				if cmd.Flags().Changed("title") {
					note.Title = title
				}
				if cmd.Flags().Changed("message") {
					note.Message = message
				}
				if err := vault.UpdateNote(note); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("updated note %d", id)))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&message, "message", "m", "", "new message")
	cmd.MarkFlagsOneRequired("title", "message")

	return cmd
}

func (c *cli) newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}

			return c.withVault(cmd, func(vault service.ClientVaultService) error {
				if err := vault.RemoveNote(id); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("removed note %d", id)))
				return nil
			})
		},
	}
}

func (c *cli) newPasswdCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change the master password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withVault(cmd, func(vault service.ClientVaultService) error {
				password, err := c.readNewPassword(promptNewPassword)
				if err != nil {
					return err
				}
				if err := vault.ChangePassword(cmd.Context(), password); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("password changed"))
				return nil
			})
		},
	}
}

func (c *cli) newCopyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy the message of a note to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}

			return c.withVault(cmd, func(vault service.ClientVaultService) error {
				note, err := vault.Note(id)
				if err != nil {
					return err
				}
				if err := c.opts.Clipboard.WriteAll(note.Message); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("copied note %d", id)))
				return nil
			})
		},
	}
}
