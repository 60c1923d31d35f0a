package cli

import (
	"github.com/spf13/cobra"

	"github.com/linctl-dev/linctl/internal/linear"
)

func newIssuesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issues",
		Short: "List, read, create, update, and delete issues",
	}
	cmd.AddCommand(
		newIssuesListCommand(),
		newIssuesReadCommand(),
		newIssuesCreateCommand(),
		newIssuesUpdateCommand(),
		newIssuesDeleteCommand(),
	)
	return cmd
}

func newIssuesListCommand() *cobra.Command {
	var opts linear.IssueListOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issues, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			issues, err := svc.ListIssues(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if issues == nil {
				issues = []linear.Issue{}
			}
			return emit(issues)
		},
	}
	cmd.Flags().StringVar(&opts.Team, "team", "", "Filter by team key or name")
	cmd.Flags().StringVar(&opts.State, "state", "", "Filter by workflow state name")
	cmd.Flags().StringVar(&opts.Assignee, "assignee", "", "Filter by assignee email, name, or \"me\"")
	cmd.Flags().StringVar(&opts.Project, "project", "", "Filter by project name")
	cmd.Flags().StringVar(&opts.Label, "label", "", "Filter by label name")
	cmd.Flags().StringVar(&opts.Cycle, "cycle", "", "Filter by cycle number or name")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Maximum number of issues to return (0 for all)")
	return cmd
}

func newIssuesReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read <issue>",
		Short: "Read one issue by identifier (\"ABC-123\") or ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			issue, err := svc.GetIssue(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return emit(issue)
		},
	}
}

func newIssuesCreateCommand() *cobra.Command {
	var opts linear.IssueCreateOptions
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			opts.Priority = changedInt(cmd, "priority")
			opts.Estimate = changedFloat(cmd, "estimate")
			opts.Labels = changedStringArray(cmd, "label")
			issue, err := svc.CreateIssue(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return emit(issue)
		},
	}
	cmd.Flags().StringVar(&opts.Team, "team", "", "Team key or name (required)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Issue title (required)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Issue description (markdown)")
	cmd.Flags().Int("priority", 0, "Priority, 0 (none) to 4 (low)")
	cmd.Flags().Float64("estimate", 0, "Estimate in the team's scale")
	cmd.Flags().StringVar(&opts.DueDate, "due-date", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Assignee, "assignee", "", "Assignee email, name, or \"me\"")
	cmd.Flags().StringVar(&opts.State, "state", "", "Workflow state name")
	cmd.Flags().StringVar(&opts.Project, "project", "", "Project name")
	cmd.Flags().StringVar(&opts.Parent, "parent", "", "Parent issue identifier")
	cmd.Flags().StringVar(&opts.Cycle, "cycle", "", "Cycle number or name")
	cmd.Flags().StringVar(&opts.Milestone, "milestone", "", "Project milestone name")
	cmd.Flags().StringArray("label", nil, "Label name (repeatable)")
	_ = cmd.MarkFlagRequired("team")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newIssuesUpdateCommand() *cobra.Command {
	var overwriteLabels bool
	cmd := &cobra.Command{
		Use:   "update <issue>",
		Short: "Update an issue; only the given flags change, empty values clear",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			opts := linear.IssueUpdateOptions{
				Title:       changedString(cmd, "title"),
				Description: changedString(cmd, "description"),
				Priority:    changedInt(cmd, "priority"),
				Estimate:    changedFloat(cmd, "estimate"),
				DueDate:     changedString(cmd, "due-date"),
				Assignee:    changedString(cmd, "assignee"),
				State:       changedString(cmd, "state"),
				Project:     changedString(cmd, "project"),
				Parent:      changedString(cmd, "parent"),
				Cycle:       changedString(cmd, "cycle"),
				Milestone:   changedString(cmd, "milestone"),
				Team:        changedString(cmd, "team"),
				Labels:      changedStringArray(cmd, "label"),
				LabelMode:   linear.LabelModeAdding,
			}
			if overwriteLabels {
				if opts.Labels == nil {
					opts.Labels = []string{}
				}
				opts.LabelMode = linear.LabelModeOverwriting
			}
			issue, err := svc.UpdateIssue(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return emit(issue)
		},
	}
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description, empty to clear")
	cmd.Flags().Int("priority", 0, "Priority, 0 (none) to 4 (low)")
	cmd.Flags().Float64("estimate", 0, "Estimate in the team's scale")
	cmd.Flags().String("due-date", "", "Due date (YYYY-MM-DD), empty to clear")
	cmd.Flags().String("assignee", "", "Assignee email, name, or \"me\"; empty to clear")
	cmd.Flags().String("state", "", "Workflow state name")
	cmd.Flags().String("project", "", "Project name, empty to clear")
	cmd.Flags().String("parent", "", "Parent issue identifier, empty to clear")
	cmd.Flags().String("cycle", "", "Cycle number or name, empty to clear")
	cmd.Flags().String("milestone", "", "Project milestone name, empty to clear")
	cmd.Flags().String("team", "", "Move the issue to another team")
	cmd.Flags().StringArray("label", nil, "Label name (repeatable); added unless --overwrite-labels")
	cmd.Flags().BoolVar(&overwriteLabels, "overwrite-labels", false, "Replace the issue's labels instead of adding")
	return cmd
}

func newIssuesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <issue>",
		Short: "Move an issue to trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			if err := svc.DeleteIssue(cmd.Context(), args[0]); err != nil {
				return err
			}
			return emitDeleted("issue", args[0])
		},
	}
}
