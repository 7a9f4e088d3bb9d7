package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-vault/internal/config"
)

func (c *cli) newGenpassCommand() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		Long: `Prints a password of printable ASCII characters. The length defaults to
the generator.length setting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := c.services.KeyChain.GeneratePassword(c.cfg.Generator.Length)
			if err != nil {
				return err
			}

			if copyToClipboard {
				if err := c.opts.Clipboard.WriteAll(password); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("password copied to clipboard"))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), password)
			return nil
		},
	}
	cmd.Flags().IntP(config.FlagLength, "l", config.DefaultGeneratorLength, "password length")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "copy to the clipboard instead of printing")

	return cmd
}
