package cli

import (
	"github.com/spf13/cobra"

	"github.com/linctl-dev/linctl/internal/linear"
)

func newCommentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "List, create, update, and delete issue comments",
	}
	cmd.AddCommand(
		newCommentsListCommand(),
		newCommentsCreateCommand(),
		newCommentsUpdateCommand(),
		newCommentsDeleteCommand(),
	)
	return cmd
}

func newCommentsListCommand() *cobra.Command {
	var issue string
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the comments on an issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			comments, err := svc.ListComments(cmd.Context(), issue, limit)
			if err != nil {
				return err
			}
			if comments == nil {
				comments = []linear.Comment{}
			}
			return emit(comments)
		},
	}
	cmd.Flags().StringVar(&issue, "issue", "", "Issue identifier or ID (required)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of comments to return (0 for all)")
	_ = cmd.MarkFlagRequired("issue")
	return cmd
}

func newCommentsCreateCommand() *cobra.Command {
	var issue, body string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a comment to an issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			comment, err := svc.CreateComment(cmd.Context(), issue, body)
			if err != nil {
				return err
			}
			return emit(comment)
		},
	}
	cmd.Flags().StringVar(&issue, "issue", "", "Issue identifier or ID (required)")
	cmd.Flags().StringVar(&body, "body", "", "Comment body in markdown (required)")
	_ = cmd.MarkFlagRequired("issue")
	_ = cmd.MarkFlagRequired("body")
	return cmd
}

func newCommentsUpdateCommand() *cobra.Command {
	var body string
	cmd := &cobra.Command{
		Use:   "update <comment-id>",
		Short: "Replace a comment's body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			comment, err := svc.UpdateComment(cmd.Context(), args[0], body)
			if err != nil {
				return err
			}
			return emit(comment)
		},
	}
	cmd.Flags().StringVar(&body, "body", "", "New comment body in markdown (required)")
	_ = cmd.MarkFlagRequired("body")
	return cmd
}

func newCommentsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <comment-id>",
		Short: "Delete a comment by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			if err := svc.DeleteComment(cmd.Context(), args[0]); err != nil {
				return err
			}
			return emitDeleted("comment", args[0])
		},
	}
}
