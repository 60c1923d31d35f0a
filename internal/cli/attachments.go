package cli

import (
	"github.com/spf13/cobra"

	"github.com/linctl-dev/linctl/internal/linear"
)

func newAttachmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attachments",
		Short: "List, create, and delete issue attachments",
	}
	cmd.AddCommand(
		newAttachmentsListCommand(),
		newAttachmentsCreateCommand(),
		newAttachmentsDeleteCommand(),
	)
	return cmd
}

func newAttachmentsListCommand() *cobra.Command {
	var issue string
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the attachments on an issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			attachments, err := svc.ListAttachments(cmd.Context(), issue, limit)
			if err != nil {
				return err
			}
			if attachments == nil {
				attachments = []linear.Attachment{}
			}
			return emit(attachments)
		},
	}
	cmd.Flags().StringVar(&issue, "issue", "", "Issue identifier or ID (required)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of attachments to return (0 for all)")
	_ = cmd.MarkFlagRequired("issue")
	return cmd
}

func newAttachmentsCreateCommand() *cobra.Command {
	var opts linear.AttachmentCreateOptions
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Attach a URL to an issue (idempotent on url+issue)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			attachment, err := svc.CreateAttachment(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return emit(attachment)
		},
	}
	cmd.Flags().StringVar(&opts.Issue, "issue", "", "Issue identifier or ID (required)")
	cmd.Flags().StringVar(&opts.URL, "url", "", "URL to attach (required)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Attachment title")
	cmd.Flags().StringVar(&opts.Subtitle, "subtitle", "", "Attachment subtitle")
	_ = cmd.MarkFlagRequired("issue")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func newAttachmentsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <attachment-id>",
		Short: "Delete an attachment by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			if err := svc.DeleteAttachment(cmd.Context(), args[0]); err != nil {
				return err
			}
			return emitDeleted("attachment", args[0])
		},
	}
}
