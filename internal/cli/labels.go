package cli

import (
	"github.com/spf13/cobra"

	"github.com/linctl-dev/linctl/internal/linear"
)

func newLabelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "List, create, update, and delete issue labels",
	}
	cmd.AddCommand(
		newLabelsListCommand(),
		newLabelsCreateCommand(),
		newLabelsUpdateCommand(),
		newLabelsDeleteCommand(),
	)
	return cmd
}

func newLabelsListCommand() *cobra.Command {
	var opts linear.LabelListOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List labels, team-scoped plus workspace labels with --team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			labels, err := svc.ListLabels(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if labels == nil {
				labels = []linear.Label{}
			}
			return emit(labels)
		},
	}
	cmd.Flags().StringVar(&opts.Team, "team", "", "Team key or name")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Maximum number of labels to return (0 for all)")
	return cmd
}

func newLabelsCreateCommand() *cobra.Command {
	var opts linear.LabelCreateOptions
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a label, workspace-wide unless --team is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			label, err := svc.CreateLabel(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return emit(label)
		},
	}
	cmd.Flags().StringVar(&opts.Name, "name", "", "Label name (required)")
	cmd.Flags().StringVar(&opts.Team, "team", "", "Team key or name")
	cmd.Flags().StringVar(&opts.Color, "color", "", "Label color (#rrggbb)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Label description")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newLabelsUpdateCommand() *cobra.Command {
	var team string
	cmd := &cobra.Command{
		Use:   "update <label>",
		Short: "Update a label; only the given flags change, empty values clear",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			opts := linear.LabelUpdateOptions{
				Name:        changedString(cmd, "name"),
				Color:       changedString(cmd, "color"),
				Description: changedString(cmd, "description"),
			}
			label, err := svc.UpdateLabel(cmd.Context(), args[0], team, opts)
			if err != nil {
				return err
			}
			return emit(label)
		},
	}
	cmd.Flags().StringVar(&team, "team", "", "Team key or name to scope the lookup")
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("color", "", "New color, empty to clear")
	cmd.Flags().String("description", "", "New description, empty to clear")
	return cmd
}

func newLabelsDeleteCommand() *cobra.Command {
	var team string
	cmd := &cobra.Command{
		Use:   "delete <label>",
		Short: "Delete a label by name or ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			if err := svc.DeleteLabel(cmd.Context(), args[0], team); err != nil {
				return err
			}
			return emitDeleted("label", args[0])
		},
	}
	cmd.Flags().StringVar(&team, "team", "", "Team key or name to scope the lookup")
	return cmd
}
