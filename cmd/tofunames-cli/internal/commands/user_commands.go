package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// UserCommandHandler manages accounts from the command line
type UserCommandHandler struct {
	open environmentOpener
}

// NewUserCommandHandler initializes a UserCommandHandler backed by the configured database
func NewUserCommandHandler() *UserCommandHandler {
	return &UserCommandHandler{open: openEnvironment}
}

// CreateSuperUserCmd creates an active staff account
func (commandHandler *UserCommandHandler) CreateSuperUserCmd(cmd *cobra.Command, _ []string) error {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		return fmt.Errorf("invalid username flag: %w", err)
	}
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return fmt.Errorf("invalid password flag: %w", err)
	}

	env, err := commandHandler.open(cmd, false)
	if err != nil {
		return err
	}
	defer env.Close()

	user, err := env.users.CreateStaff(cmd.Context(), username, email, password)
	if err != nil {
		return fmt.Errorf("failed to create superuser: %w", err)
	}

	env.logger.Info("Superuser created", "id", user.ID, "username", user.Username)
	fmt.Fprintf(cmd.OutOrStdout(), "Superuser %s created successfully.\n", user.Username)
	return nil
}

// ListUsersCmd prints every account, newest first
func (commandHandler *UserCommandHandler) ListUsersCmd(cmd *cobra.Command, _ []string) error {
	env, err := commandHandler.open(cmd, false)
	if err != nil {
		return err
	}
	defer env.Close()

	list, err := env.users.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tSTAFF\tACTIVE\tLAST LOGIN\tJOINED")
	for _, u := range list {
		lastLogin := "-"
		if u.LastLogin != nil {
			lastLogin = formatTime(*u.LastLogin)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%t\t%s\t%s\n",
			u.ID, u.Username, u.Email, u.IsStaff, u.IsActive, lastLogin, formatTime(u.CreatedAt))
	}
	return w.Flush()
}

// InitUserCommands registers createsuperuser and users list
func InitUserCommands(rootCmd *cobra.Command) error {
	handler := NewUserCommandHandler()

	var createSuperUserCmd = &cobra.Command{
		Use:   "createsuperuser",
		Short: "Create an active staff account",
		Args:  cobra.NoArgs,
		RunE:  handler.CreateSuperUserCmd,
	}
	createSuperUserCmd.Flags().StringP("username", "", "", "Username of the new account")
	createSuperUserCmd.Flags().StringP("email", "", "", "Email address of the new account")
	createSuperUserCmd.Flags().StringP("password", "", "", "Password of the new account")
	for _, name := range []string{"username", "email", "password"} {
		if err := createSuperUserCmd.MarkFlagRequired(name); err != nil {
			return fmt.Errorf("failed to mark %s flag required: %w", name, err)
		}
	}
	rootCmd.AddCommand(createSuperUserCmd)

	var usersCmd = &cobra.Command{
		Use:   "users",
		Short: "Inspect user accounts",
	}
	usersCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all users, newest first",
		Args:  cobra.NoArgs,
		RunE:  handler.ListUsersCmd,
	})
	rootCmd.AddCommand(usersCmd)

	return nil
}
