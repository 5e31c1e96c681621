package commands

import (
	"fmt"
	"io"

	"github.com/tofunames/tofunames/internal/domain/registrar"

	"github.com/spf13/cobra"
)

// RegistrarCommandHandler imports the registrar account and checks domains
type RegistrarCommandHandler struct {
	open environmentOpener
}

// NewRegistrarCommandHandler initializes a RegistrarCommandHandler backed by
// the configured database and registrar
func NewRegistrarCommandHandler() *RegistrarCommandHandler {
	return &RegistrarCommandHandler{open: openEnvironment}
}

// PopulateContactsCmd imports registrar contacts not yet stored for the owner
func (commandHandler *RegistrarCommandHandler) PopulateContactsCmd(cmd *cobra.Command, _ []string) error {
	env, err := commandHandler.open(cmd, true)
	if err != nil {
		return err
	}
	defer env.Close()

	ownerID, err := env.ownerID(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	report, err := env.contacts.ImportFromRegistrar(cmd.Context(), ownerID)
	if err != nil {
		return fmt.Errorf("failed to import contacts: %w", err)
	}
	printReport(cmd.OutOrStdout(), "contacts", report)
	return nil
}

// PopulateDomainsCmd imports registrar domains not yet stored for the owner
func (commandHandler *RegistrarCommandHandler) PopulateDomainsCmd(cmd *cobra.Command, _ []string) error {
	env, err := commandHandler.open(cmd, true)
	if err != nil {
		return err
	}
	defer env.Close()

	ownerID, err := env.ownerID(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	report, err := env.domains.ImportFromRegistrar(cmd.Context(), ownerID)
	if err != nil {
		return fmt.Errorf("failed to import domains: %w", err)
	}
	printReport(cmd.OutOrStdout(), "domains", report)
	return nil
}

// PopulateAllCmd imports contacts and then domains for the owner
func (commandHandler *RegistrarCommandHandler) PopulateAllCmd(cmd *cobra.Command, _ []string) error {
	env, err := commandHandler.open(cmd, true)
	if err != nil {
		return err
	}
	defer env.Close()

	ownerID, err := env.ownerID(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	contactReport, domainReport, err := env.sync.Sync(cmd.Context(), ownerID)
	if err != nil {
		return fmt.Errorf("failed to sync registrar account: %w", err)
	}
	printReport(cmd.OutOrStdout(), "contacts", contactReport)
	printReport(cmd.OutOrStdout(), "domains", domainReport)
	return nil
}

// CheckDomainCmd asks the registrar whether a domain can be registered
func (commandHandler *RegistrarCommandHandler) CheckDomainCmd(cmd *cobra.Command, args []string) error {
	env, err := commandHandler.open(cmd, true)
	if err != nil {
		return err
	}
	defer env.Close()

	availability, err := env.domains.CheckAvailability(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", args[0], err)
	}

	status := "taken"
	if availability.Available {
		status = "available"
	}
	if availability.Reason != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is %s (%s)\n", availability.Name, status, availability.Reason)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is %s\n", availability.Name, status)
	return nil
}

func printReport(w io.Writer, kind string, report *registrar.ImportReport) {
	fmt.Fprintf(w, "%s: %d listed, %d created, %d already present, %d skipped\n",
		kind, report.Listed, report.Created, report.Existing, report.Skipped)
}

// InitRegistrarCommands registers the populate and check commands
func InitRegistrarCommands(rootCmd *cobra.Command) error {
	handler := NewRegistrarCommandHandler()

	var populateCmd = &cobra.Command{
		Use:   "populate",
		Short: "Import the registrar account into the database",
	}
	populateCmd.PersistentFlags().StringP("owner", "", "", "Username that receives the imported rows")
	if err := populateCmd.MarkPersistentFlagRequired("owner"); err != nil {
		return fmt.Errorf("failed to mark owner flag required: %w", err)
	}

	populateCmd.AddCommand(&cobra.Command{
		Use:   "contacts",
		Short: "Import registrar contacts",
		Args:  cobra.NoArgs,
		RunE:  handler.PopulateContactsCmd,
	})
	populateCmd.AddCommand(&cobra.Command{
		Use:   "domains",
		Short: "Import registrar domains; their contacts must already be imported",
		Args:  cobra.NoArgs,
		RunE:  handler.PopulateDomainsCmd,
	})
	populateCmd.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Import registrar contacts and then domains",
		Args:  cobra.NoArgs,
		RunE:  handler.PopulateAllCmd,
	})
	rootCmd.AddCommand(populateCmd)

	var checkCmd = &cobra.Command{
		Use:   "check <domain>",
		Short: "Check whether a domain can be registered",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.CheckDomainCmd,
	}
	rootCmd.AddCommand(checkCmd)

	return nil
}
