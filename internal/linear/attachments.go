package linear

import "context"

type attachmentPayload struct {
	Success    bool            `json:"success"`
	Attachment *attachmentNode `json:"attachment"`
}

// AttachmentCreateOptions carry the fields of a new attachment. The API is
// idempotent on the url+issue pair: re-creating the same URL on the same
// issue updates the existing attachment instead of duplicating it.
type AttachmentCreateOptions struct {
	Issue    string
	URL      string
	Title    string
	Subtitle string
}

// ListAttachments lists the attachments on an issue.
func (s *Service) ListAttachments(ctx context.Context, issueRef string, limit int) ([]Attachment, error) {
	variables := map[string]any{
		"id":    issueRef,
		"first": pageSize(limit),
		"after": nil,
	}
	var attachments []Attachment
	for {
		var resp struct {
			Issue *struct {
				ID          string                     `json:"id"`
				Attachments connection[attachmentNode] `json:"attachments"`
			} `json:"issue"`
		}
		if err := s.client.Do(ctx, queryIssueAttachments, variables, &resp); err != nil {
			if isEntityNotFound(err) {
				return nil, &NotFoundError{Field: "issue", Value: issueRef}
			}
			return nil, err
		}
		if resp.Issue == nil {
			return nil, &NotFoundError{Field: "issue", Value: issueRef}
		}
		for _, n := range resp.Issue.Attachments.Nodes {
			attachments = append(attachments, attachmentFromNode(n))
			if limit > 0 && len(attachments) >= limit {
				return attachments, nil
			}
		}
		if !resp.Issue.Attachments.PageInfo.HasNextPage {
			break
		}
		variables["after"] = resp.Issue.Attachments.PageInfo.EndCursor
	}
	return attachments, nil
}

// CreateAttachment attaches a URL to the referenced issue.
func (s *Service) CreateAttachment(ctx context.Context, opts AttachmentCreateOptions) (*Attachment, error) {
	if opts.URL == "" {
		return nil, validationf("attachment url is required")
	}
	if opts.Issue == "" {
		return nil, validationf("attachment issue is required")
	}
	issueID, err := s.res.ResolveIssue(ctx, opts.Issue)
	if err != nil {
		return nil, err
	}
	input := Input{}
	input.Set("issueId", issueID)
	input.Set("url", opts.URL)
	input.SetNonEmpty("title", opts.Title)
	input.SetNonEmpty("subtitle", opts.Subtitle)
	var resp struct {
		AttachmentCreate attachmentPayload `json:"attachmentCreate"`
	}
	if err := s.client.Do(ctx, mutationAttachmentCreate, map[string]any{"input": input}, &resp); err != nil {
		return nil, remoteErr("create attachment", opts.URL, err)
	}
	if !resp.AttachmentCreate.Success || resp.AttachmentCreate.Attachment == nil {
		return nil, remoteErr("create attachment", opts.URL, nil)
	}
	attachment := attachmentFromNode(*resp.AttachmentCreate.Attachment)
	return &attachment, nil
}

// DeleteAttachment deletes an attachment by opaque ID.
func (s *Service) DeleteAttachment(ctx context.Context, id string) error {
	if !IsOpaque(id) {
		return validationf("attachment reference must be an ID, got %q", id)
	}
	var resp struct {
		AttachmentDelete struct {
			Success bool `json:"success"`
		} `json:"attachmentDelete"`
	}
	if err := s.client.Do(ctx, mutationAttachmentDelete, map[string]any{"id": id}, &resp); err != nil {
		return remoteErr("delete attachment", id, err)
	}
	if !resp.AttachmentDelete.Success {
		return remoteErr("delete attachment", id, nil)
	}
	return nil
}
