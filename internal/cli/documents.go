package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linctl-dev/linctl/internal/linear"
)

func newDocumentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "documents",
		Short: "List, read, create, update, and delete documents",
	}
	cmd.AddCommand(
		newDocumentsListCommand(),
		newDocumentsReadCommand(),
		newDocumentsCreateCommand(),
		newDocumentsUpdateCommand(),
		newDocumentsDeleteCommand(),
	)
	return cmd
}

func newDocumentsListCommand() *cobra.Command {
	var project, issue string
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents, by project or linked from an issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if project != "" && issue != "" {
				return fmt.Errorf("--project and --issue are mutually exclusive")
			}
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			if issue != "" {
				links, err := svc.ListIssueDocumentLinks(cmd.Context(), issue)
				if err != nil {
					return err
				}
				return emit(links)
			}
			documents, err := svc.ListDocuments(cmd.Context(), project, limit)
			if err != nil {
				return err
			}
			if documents == nil {
				documents = []linear.Document{}
			}
			return emit(documents)
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "List documents of this project")
	cmd.Flags().StringVar(&issue, "issue", "", "List document links attached to this issue")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of documents to return (0 for all)")
	return cmd
}

func newDocumentsReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read <document>",
		Short: "Read one document by title or ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			document, err := svc.GetDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return emit(document)
		},
	}
}

func newDocumentsCreateCommand() *cobra.Command {
	var opts linear.DocumentCreateOptions
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			document, err := svc.CreateDocument(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return emit(document)
		},
	}
	cmd.Flags().StringVar(&opts.Title, "title", "", "Document title (required)")
	cmd.Flags().StringVar(&opts.Content, "content", "", "Document content (markdown)")
	cmd.Flags().StringVar(&opts.Project, "project", "", "Project to attach the document to")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newDocumentsUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <document>",
		Short: "Update a document; only the given flags change, empty values clear",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			opts := linear.DocumentUpdateOptions{
				Title:   changedString(cmd, "title"),
				Content: changedString(cmd, "content"),
				Project: changedString(cmd, "project"),
			}
			document, err := svc.UpdateDocument(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return emit(document)
		},
	}
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("content", "", "New content, empty to clear")
	cmd.Flags().String("project", "", "New project, empty to detach")
	return cmd
}

func newDocumentsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <document>",
		Short: "Delete a document by title or ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			if err := svc.DeleteDocument(cmd.Context(), args[0]); err != nil {
				return err
			}
			return emitDeleted("document", args[0])
		},
	}
}
