package cli

import (
	"github.com/spf13/cobra"

	"github.com/linctl-dev/linctl/internal/linear"
)

func newProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List, read, create, update, and delete projects",
	}
	cmd.AddCommand(
		newProjectsListCommand(),
		newProjectsReadCommand(),
		newProjectsCreateCommand(),
		newProjectsUpdateCommand(),
		newProjectsDeleteCommand(),
	)
	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			projects, err := svc.ListProjects(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if projects == nil {
				projects = []linear.Project{}
			}
			return emit(projects)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of projects to return (0 for all)")
	return cmd
}

func newProjectsReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read <project>",
		Short: "Read one project by name or ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			project, err := svc.GetProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return emit(project)
		},
	}
}

func newProjectsCreateCommand() *cobra.Command {
	var opts linear.ProjectCreateOptions
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			project, err := svc.CreateProject(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return emit(project)
		},
	}
	cmd.Flags().StringVar(&opts.Name, "name", "", "Project name (required)")
	cmd.Flags().StringArrayVar(&opts.Teams, "team", nil, "Team key or name (repeatable, at least one required)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Project description")
	cmd.Flags().StringVar(&opts.State, "state", "", "Project state (backlog, planned, started, paused, completed, canceled)")
	cmd.Flags().StringVar(&opts.Lead, "lead", "", "Project lead email, name, or \"me\"")
	cmd.Flags().StringVar(&opts.TargetDate, "target-date", "", "Target date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("team")
	return cmd
}

func newProjectsUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <project>",
		Short: "Update a project; only the given flags change, empty values clear",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			opts := linear.ProjectUpdateOptions{
				Name:        changedString(cmd, "name"),
				Description: changedString(cmd, "description"),
				State:       changedString(cmd, "state"),
				Lead:        changedString(cmd, "lead"),
				TargetDate:  changedString(cmd, "target-date"),
			}
			project, err := svc.UpdateProject(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return emit(project)
		},
	}
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("description", "", "New description, empty to clear")
	cmd.Flags().String("state", "", "New state")
	cmd.Flags().String("lead", "", "New lead, empty to clear")
	cmd.Flags().String("target-date", "", "New target date, empty to clear")
	return cmd
}

func newProjectsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project>",
		Short: "Move a project to trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			if err := svc.DeleteProject(cmd.Context(), args[0]); err != nil {
				return err
			}
			return emitDeleted("project", args[0])
		},
	}
}
