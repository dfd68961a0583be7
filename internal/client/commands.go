package client

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-armqr/internal/config"
	"github.com/MKhiriev/go-armqr/internal/credentials"
	"github.com/MKhiriev/go-armqr/models"
	"github.com/spf13/cobra"
)

var errEmptyPassword = errors.New("password must not be empty")

func (a *App) newRootCommand() *cobra.Command {
	var overrides config.ClientAdapter

	root := &cobra.Command{
		Use:           "armqrctl",
		Short:         "Manage the profiles of an armqr server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(overrides)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&overrides.HTTPAddress, "server", "s", "", "armqr server address (env ADAPTER_ADDRESS)")
	flags.StringVarP(&overrides.AdminUser, "user", "u", "", "admin user name (env ADAPTER_ADMIN_USER)")
	flags.DurationVar(&overrides.RequestTimeout, "timeout", 0, "request timeout (env ADAPTER_REQUEST_TIMEOUT)")

	root.AddCommand(
		a.newLoginCommand(),
		a.newLogoutCommand(),
		a.newProfileCommand(),
		a.newVersionCommand(),
	)

	return root
}

func (a *App) newLoginCommand() *cobra.Command {
	var password string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check the admin credentials and store them in the OS keyring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if passwordStdin || password == "" {
				if !passwordStdin {
					fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
				}
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("error reading password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if password == "" {
				return errEmptyPassword
			}

			creds := credentials.Credentials{User: a.cfg.Adapter.AdminUser, Password: password}
			a.adapter.SetCredentials(creds.User, creds.Password)

			// any admin call verifies the credentials
			if _, err := a.adapter.ListProfiles(cmd.Context()); err != nil {
				return err
			}

			if err := a.credentials.Save(a.cfg.Adapter.HTTPAddress, creds); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s Logged in to %s as %s\n", colorSuccess("✓"), a.cfg.Adapter.HTTPAddress, creds.User)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "admin password (prompted when empty)")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	return cmd
}

func (a *App) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored credentials for the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.credentials.Delete(a.cfg.Adapter.HTTPAddress); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s Logged out of %s\n", colorSuccess("✓"), a.cfg.Adapter.HTTPAddress)
			return nil
		},
	}
}

func (a *App) newProfileCommand() *cobra.Command {
	profile := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"profiles"},
		Short:   "List, create, activate and delete profiles",
	}

	profile.AddCommand(
		a.newProfileListCommand(),
		a.newProfileCreateCommand(),
		a.newProfileActivateCommand(),
		a.newProfileDeleteCommand(),
	)
	return profile
}

func (a *App) newProfileListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all profiles; the active one is marked with *",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.authenticate(); err != nil {
				return err
			}

			profiles, err := a.adapter.ListProfiles(cmd.Context())
			if err != nil {
				return err
			}

			return printProfiles(a.out, profiles)
		},
	}
}

func (a *App) newProfileCreateCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create <target-uri>",
		Short: "Create a redirect profile without activating it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.authenticate(); err != nil {
				return err
			}

			req := models.NewProfileRequest{TargetURI: args[0]}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}

			id, err := a.adapter.CreateProfile(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s Created profile %s\n", colorSuccess("✓"), id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "display name (defaults to \"Redirect: <target-uri>\")")
	return cmd
}

func (a *App) newProfileActivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <id>",
		Short: "Make a profile the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.authenticate(); err != nil {
				return err
			}

			if err := a.adapter.ActivateProfile(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s Activated profile %s\n", colorSuccess("✓"), args[0])
			return nil
		},
	}
}

func (a *App) newProfileDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an inactive redirect profile",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.authenticate(); err != nil {
				return err
			}

			if err := a.adapter.DeleteProfile(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s Deleted profile %s\n", colorSuccess("✓"), args[0])
			return nil
		},
	}
}

func (a *App) newVersionCommand() *cobra.Command {
	var clientOnly bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(a.out, "client: %s\n", a.build)
			if clientOnly {
				return nil
			}

			serverVersion, err := a.adapter.Version(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "server: %s (%s)\n", serverVersion, a.cfg.Adapter.HTTPAddress)
			return nil
		},
	}

	cmd.Flags().BoolVar(&clientOnly, "client", false, "skip asking the server")
	return cmd
}

