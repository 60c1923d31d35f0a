package cli

import (
	"github.com/spf13/cobra"

	"github.com/linctl-dev/linctl/internal/linear"
)

func newTeamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List and read teams",
	}
	cmd.AddCommand(
		newTeamsListCommand(),
		newTeamsReadCommand(),
	)
	return cmd
}

func newTeamsListCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the teams in the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			teams, err := svc.ListTeams(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if teams == nil {
				teams = []linear.Team{}
			}
			return emit(teams)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of teams to return (0 for all)")
	return cmd
}

func newTeamsReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read <team>",
		Short: "Read one team by key, name, or ID, including its workflow states",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			team, err := svc.GetTeam(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return emit(team)
		},
	}
}
