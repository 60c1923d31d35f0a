// Package cli implements the linctl command tree. Each entity group is a
// subcommand with list|read|create|update|delete verbs; every command
// prints a JSON value on stdout on success and a JSON error object on
// failure.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linctl-dev/linctl/internal/config"
	"github.com/linctl-dev/linctl/internal/linear"
	"github.com/linctl-dev/linctl/internal/logger"
)

const version = "0.3.0"

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	cmd := NewRootCommand()
	defer logger.GetLogger().Sync()
	if err := cmd.Execute(); err != nil {
		printer.Error(err)
		return 1
	}
	return 0
}

// NewRootCommand creates the root command with all entity groups attached.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linctl",
		Short: "linctl - Linear.app from the command line",
		Long: `linctl - Linear.app from the command line

linctl exposes Linear's issues, documents, attachments, projects, cycles,
project milestones, labels, comments, teams, and users as JSON-emitting
subcommands. References may be human identifiers (team keys, project names,
issue identifiers like "ABC-123", label names, user emails); linctl
resolves them to API IDs with batched lookups before issuing mutations.

Examples:
  linctl issues list --team ENG --state "In Progress"
  linctl issues create --team ENG --title "Fix login redirect" --label bug
  linctl issues update ENG-123 --assignee me --priority 2
  linctl documents list --project "Mobile app"
  linctl teams read ENG`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("api-token", "", "Linear API token (overrides LINEAR_API_KEY and the config file)")
	cmd.PersistentFlags().String("endpoint", "", "GraphQL endpoint override (testing only)")
	cmd.PersistentFlags().Int("timeout", 0, "Request timeout in seconds")
	cmd.Flags().BoolP("version", "v", false, "Show version information")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "linctl version "+version)
			return err
		}
		return cmd.Help()
	}

	cmd.AddCommand(
		newIssuesCommand(),
		newDocumentsCommand(),
		newAttachmentsCommand(),
		newProjectsCommand(),
		newCyclesCommand(),
		newMilestonesCommand(),
		newLabelsCommand(),
		newCommentsCommand(),
		newTeamsCommand(),
		newUsersCommand(),
	)

	return cmd
}

// newService builds the Linear service from config plus the persistent
// flags, which win over environment and file.
func newService(cmd *cobra.Command) (*linear.Service, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if token, _ := cmd.Flags().GetString("api-token"); token != "" {
		cfg.APIToken = token
	}
	if endpoint, _ := cmd.Flags().GetString("endpoint"); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if timeout, _ := cmd.Flags().GetInt("timeout"); timeout != 0 {
		if timeout < 0 {
			return nil, fmt.Errorf("timeout must be positive, got: %d", timeout)
		}
		cfg.Timeout = timeoutSeconds(timeout)
	}
	if cfg.APIToken == "" {
		return nil, fmt.Errorf("an API token is required: set LINEAR_API_KEY, the config file, or --api-token")
	}

	client := linear.NewClient(cfg.APIToken)
	if cfg.Endpoint != "" {
		client.Endpoint = cfg.Endpoint
	}
	client.HTTPClient.Timeout = cfg.Timeout
	return linear.NewService(client), nil
}
