package linear

import (
	"context"
	"net/url"
	"strings"

	"github.com/linctl-dev/linctl/internal/logger"
)

// DocumentCreateOptions carry the fields of a new document.
type DocumentCreateOptions struct {
	Title   string
	Content string
	Project string
}

// DocumentUpdateOptions carry a partial document update.
type DocumentUpdateOptions struct {
	Title   *string
	Content *string
	Project *string
}

type documentPayload struct {
	Success  bool          `json:"success"`
	Document *documentNode `json:"document"`
}

// ListDocuments lists documents, optionally scoped to a project.
func (s *Service) ListDocuments(ctx context.Context, projectRef string, limit int) ([]Document, error) {
	query := queryDocuments
	variables := map[string]any{
		"first": pageSize(limit),
		"after": nil,
	}
	if projectRef != "" {
		projectID, err := s.res.ResolveProject(ctx, projectRef)
		if err != nil {
			return nil, err
		}
		query = queryProjectDocuments
		variables["projectId"] = projectID
	}

	var documents []Document
	for {
		var page connection[documentNode]
		if projectRef != "" {
			var resp struct {
				Project *struct {
					ID        string                   `json:"id"`
					Documents connection[documentNode] `json:"documents"`
				} `json:"project"`
			}
			if err := s.client.Do(ctx, query, variables, &resp); err != nil {
				return nil, err
			}
			if resp.Project == nil {
				return nil, &NotFoundError{Field: "project", Value: projectRef}
			}
			page = resp.Project.Documents
		} else {
			var resp struct {
				Documents connection[documentNode] `json:"documents"`
			}
			if err := s.client.Do(ctx, query, variables, &resp); err != nil {
				return nil, err
			}
			page = resp.Documents
		}
		for _, n := range page.Nodes {
			documents = append(documents, documentFromNode(n))
			if limit > 0 && len(documents) >= limit {
				return documents, nil
			}
		}
		if !page.PageInfo.HasNextPage {
			break
		}
		variables["after"] = page.PageInfo.EndCursor
	}
	return documents, nil
}

// GetDocument fetches one document by opaque ID or by title lookup across
// the workspace listing.
func (s *Service) GetDocument(ctx context.Context, ref string) (*Document, error) {
	id := ref
	if !IsOpaque(ref) {
		resolved, err := s.resolveDocumentByTitle(ctx, ref)
		if err != nil {
			return nil, err
		}
		id = resolved
	}
	var resp struct {
		Document *documentNode `json:"document"`
	}
	if err := s.client.Do(ctx, queryDocument, map[string]any{"id": id}, &resp); err != nil {
		if isEntityNotFound(err) {
			return nil, &NotFoundError{Field: "document", Value: ref}
		}
		return nil, err
	}
	if resp.Document == nil {
		return nil, &NotFoundError{Field: "document", Value: ref}
	}
	document := documentFromNode(*resp.Document)
	return &document, nil
}

// Documents have no server-side name filter, so title resolution walks the
// workspace listing and matches client-side.
func (s *Service) resolveDocumentByTitle(ctx context.Context, title string) (string, error) {
	variables := map[string]any{"first": defaultPageSize, "after": nil}
	var matches []match
	for {
		var resp struct {
			Documents connection[documentNode] `json:"documents"`
		}
		if err := s.client.Do(ctx, queryDocuments, variables, &resp); err != nil {
			return "", err
		}
		for _, n := range resp.Documents.Nodes {
			if strings.EqualFold(n.Title, title) {
				label := n.Title
				if n.Project != nil {
					label += " [" + n.Project.Name + "]"
				}
				matches = append(matches, match{id: n.ID, label: label})
			}
		}
		if !resp.Documents.PageInfo.HasNextPage {
			break
		}
		variables["after"] = resp.Documents.PageInfo.EndCursor
	}
	switch len(matches) {
	case 0:
		return "", &NotFoundError{Field: "document", Value: title}
	case 1:
		return matches[0].id, nil
	default:
		candidates := make([]string, len(matches))
		for i, m := range matches {
			candidates[i] = m.label
		}
		return "", &AmbiguousError{Field: "document", Value: title, Candidates: candidates}
	}
}

// ListIssueDocumentLinks extracts document references from an issue's
// attachments. Attachments whose URL does not parse are skipped rather
// than failing the whole listing.
func (s *Service) ListIssueDocumentLinks(ctx context.Context, issueRef string) ([]DocumentLink, error) {
	attachments, err := s.ListAttachments(ctx, issueRef, 0)
	if err != nil {
		return nil, err
	}
	log := logger.GetLogger()
	links := make([]DocumentLink, 0)
	for _, a := range attachments {
		u, err := url.Parse(a.URL)
		if err != nil || u.Host == "" {
			log.Debugf("skipping malformed attachment url %q on %s", a.URL, issueRef)
			continue
		}
		if !isDocumentURL(u) {
			continue
		}
		links = append(links, DocumentLink{Title: a.Title, URL: a.URL})
	}
	return links, nil
}

// isDocumentURL reports whether u points at a Linear document.
func isDocumentURL(u *url.URL) bool {
	if !strings.EqualFold(u.Host, "linear.app") {
		return false
	}
	return strings.Contains(u.Path, "/document/")
}

// CreateDocument creates a document, attached to a project when given.
func (s *Service) CreateDocument(ctx context.Context, opts DocumentCreateOptions) (*Document, error) {
	if opts.Title == "" {
		return nil, validationf("document title is required")
	}
	input := Input{}
	input.Set("title", opts.Title)
	input.SetNonEmpty("content", opts.Content)
	if opts.Project != "" {
		projectID, err := s.res.ResolveProject(ctx, opts.Project)
		if err != nil {
			return nil, err
		}
		input.Set("projectId", projectID)
	}
	var resp struct {
		DocumentCreate documentPayload `json:"documentCreate"`
	}
	if err := s.client.Do(ctx, mutationDocumentCreate, map[string]any{"input": input}, &resp); err != nil {
		return nil, remoteErr("create document", opts.Title, err)
	}
	if !resp.DocumentCreate.Success || resp.DocumentCreate.Document == nil {
		return nil, remoteErr("create document", opts.Title, nil)
	}
	document := documentFromNode(*resp.DocumentCreate.Document)
	return &document, nil
}

// UpdateDocument applies a partial update to the referenced document.
func (s *Service) UpdateDocument(ctx context.Context, ref string, opts DocumentUpdateOptions) (*Document, error) {
	if opts.Title != nil && *opts.Title == "" {
		return nil, validationf("document title cannot be cleared")
	}
	id := ref
	if !IsOpaque(ref) {
		var err error
		if id, err = s.resolveDocumentByTitle(ctx, ref); err != nil {
			return nil, err
		}
	}
	input := Input{}
	if opts.Title != nil {
		input.Set("title", *opts.Title)
	}
	if opts.Content != nil {
		if *opts.Content == "" {
			input.Clear("content")
		} else {
			input.Set("content", *opts.Content)
		}
	}
	if opts.Project != nil {
		if *opts.Project == "" {
			input.Clear("projectId")
		} else {
			projectID, err := s.res.ResolveProject(ctx, *opts.Project)
			if err != nil {
				return nil, err
			}
			input.Set("projectId", projectID)
		}
	}
	if input.Empty() {
		return nil, validationf("nothing to update")
	}
	var resp struct {
		DocumentUpdate documentPayload `json:"documentUpdate"`
	}
	vars := map[string]any{"id": id, "input": input}
	if err := s.client.Do(ctx, mutationDocumentUpdate, vars, &resp); err != nil {
		return nil, remoteErr("update document", ref, err)
	}
	if !resp.DocumentUpdate.Success || resp.DocumentUpdate.Document == nil {
		return nil, remoteErr("update document", ref, nil)
	}
	document := documentFromNode(*resp.DocumentUpdate.Document)
	return &document, nil
}

// DeleteDocument deletes the referenced document.
func (s *Service) DeleteDocument(ctx context.Context, ref string) error {
	id := ref
	if !IsOpaque(ref) {
		var err error
		if id, err = s.resolveDocumentByTitle(ctx, ref); err != nil {
			return err
		}
	}
	var resp struct {
		DocumentDelete struct {
			Success bool `json:"success"`
		} `json:"documentDelete"`
	}
	if err := s.client.Do(ctx, mutationDocumentDelete, map[string]any{"id": id}, &resp); err != nil {
		return remoteErr("delete document", ref, err)
	}
	if !resp.DocumentDelete.Success {
		return remoteErr("delete document", ref, nil)
	}
	return nil
}
