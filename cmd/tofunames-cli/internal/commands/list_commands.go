package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// ListCommandHandler prints the admin listings of contacts and domains
type ListCommandHandler struct {
	open environmentOpener
}

// NewListCommandHandler initializes a ListCommandHandler backed by the configured database
func NewListCommandHandler() *ListCommandHandler {
	return &ListCommandHandler{open: openEnvironment}
}

// ListContactsCmd prints every contact, newest first
func (commandHandler *ListCommandHandler) ListContactsCmd(cmd *cobra.Command, _ []string) error {
	env, err := commandHandler.open(cmd, false)
	if err != nil {
		return err
	}
	defer env.Close()

	list, err := env.contactRepo.ListAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list contacts: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tOWNER\tNAME\tEMAIL\tCOUNTRY\tHANDLE\tCREATED")
	for _, c := range list {
		fmt.Fprintf(w, "%d\t%d\t%s %s\t%s\t%s\t%s\t%s\n",
			c.ID, c.OwnerID, c.FirstName, c.LastName, c.Email, c.Country, orDash(c.APIID), formatTime(c.CreatedAt))
	}
	return w.Flush()
}

// ListDomainsCmd prints every domain, newest first
func (commandHandler *ListCommandHandler) ListDomainsCmd(cmd *cobra.Command, _ []string) error {
	env, err := commandHandler.open(cmd, false)
	if err != nil {
		return err
	}
	defer env.Close()

	list, err := env.domains.ListAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list domains: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tOWNER\tNAME\tCONTACT\tNAMESERVERS\tPENDING\tCREATED")
	for _, d := range list {
		fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%s\t%t\t%s\n",
			d.ID, d.OwnerID, d.Name, d.ContactID, orDash(strings.Join(d.Nameservers, ",")), d.Pending, formatTime(d.CreatedAt))
	}
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// InitListCommands registers contacts list and domains list
func InitListCommands(rootCmd *cobra.Command) error {
	handler := NewListCommandHandler()

	var contactsCmd = &cobra.Command{
		Use:   "contacts",
		Short: "Inspect contacts",
	}
	contactsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all contacts, newest first",
		Args:  cobra.NoArgs,
		RunE:  handler.ListContactsCmd,
	})
	rootCmd.AddCommand(contactsCmd)

	var domainsCmd = &cobra.Command{
		Use:   "domains",
		Short: "Inspect domains",
	}
	domainsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all domains, newest first",
		Args:  cobra.NoArgs,
		RunE:  handler.ListDomainsCmd,
	})
	rootCmd.AddCommand(domainsCmd)

	return nil
}
