package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"portfolio/internal/app"
)

func newHashPasswordCmd() *cobra.Command {
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print the SHA-256 digest stored as the admin credential",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			switch {
			case passwordStdin:
				raw, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				password = strings.TrimSpace(string(raw))
			case len(args) == 1:
				password = args[0]
			default:
				return fmt.Errorf("supply the password as an argument or via --password-stdin")
			}

			if password == "" {
				return fmt.Errorf("password is empty")
			}

			fmt.Fprintln(cmd.OutOrStdout(), app.HashPassword(password))
			return nil
		},
	}

	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	return cmd
}
