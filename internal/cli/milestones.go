package cli

import (
	"github.com/spf13/cobra"

	"github.com/linctl-dev/linctl/internal/linear"
)

func newMilestonesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project-milestones",
		Short: "List, read, create, update, and delete project milestones",
	}
	cmd.AddCommand(
		newMilestonesListCommand(),
		newMilestonesReadCommand(),
		newMilestonesCreateCommand(),
		newMilestonesUpdateCommand(),
		newMilestonesDeleteCommand(),
	)
	return cmd
}

func newMilestonesListCommand() *cobra.Command {
	var project string
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the milestones of a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			milestones, err := svc.ListMilestones(cmd.Context(), project, limit)
			if err != nil {
				return err
			}
			if milestones == nil {
				milestones = []linear.Milestone{}
			}
			return emit(milestones)
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Project name or ID (required)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of milestones to return (0 for all)")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newMilestonesReadCommand() *cobra.Command {
	var project string
	cmd := &cobra.Command{
		Use:   "read <milestone>",
		Short: "Read one milestone by name (with --project) or ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			milestone, err := svc.GetMilestone(cmd.Context(), args[0], project)
			if err != nil {
				return err
			}
			return emit(milestone)
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Project name or ID to scope the lookup")
	return cmd
}

func newMilestonesCreateCommand() *cobra.Command {
	var opts linear.MilestoneCreateOptions
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a milestone on a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			milestone, err := svc.CreateMilestone(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return emit(milestone)
		},
	}
	cmd.Flags().StringVar(&opts.Name, "name", "", "Milestone name (required)")
	cmd.Flags().StringVar(&opts.Project, "project", "", "Project name or ID (required)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Milestone description")
	cmd.Flags().StringVar(&opts.TargetDate, "target-date", "", "Target date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newMilestonesUpdateCommand() *cobra.Command {
	var project string
	cmd := &cobra.Command{
		Use:   "update <milestone>",
		Short: "Update a milestone; only the given flags change, empty values clear",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			opts := linear.MilestoneUpdateOptions{
				Name:        changedString(cmd, "name"),
				Description: changedString(cmd, "description"),
				TargetDate:  changedString(cmd, "target-date"),
			}
			milestone, err := svc.UpdateMilestone(cmd.Context(), args[0], project, opts)
			if err != nil {
				return err
			}
			return emit(milestone)
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Project name or ID to scope the lookup")
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("description", "", "New description, empty to clear")
	cmd.Flags().String("target-date", "", "New target date, empty to clear")
	return cmd
}

func newMilestonesDeleteCommand() *cobra.Command {
	var project string
	cmd := &cobra.Command{
		Use:   "delete <milestone>",
		Short: "Delete a milestone by name (with --project) or ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			if err := svc.DeleteMilestone(cmd.Context(), args[0], project); err != nil {
				return err
			}
			return emitDeleted("milestone", args[0])
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Project name or ID to scope the lookup")
	return cmd
}
