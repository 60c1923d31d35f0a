package linear

import "context"

type commentPayload struct {
	Success bool         `json:"success"`
	Comment *commentNode `json:"comment"`
}

// ListComments lists the comments on an issue.
func (s *Service) ListComments(ctx context.Context, issueRef string, limit int) ([]Comment, error) {
	variables := map[string]any{
		"id":    issueRef,
		"first": pageSize(limit),
		"after": nil,
	}
	var comments []Comment
	for {
		var resp struct {
			Issue *struct {
				ID       string                  `json:"id"`
				Comments connection[commentNode] `json:"comments"`
			} `json:"issue"`
		}
		if err := s.client.Do(ctx, queryIssueComments, variables, &resp); err != nil {
			if isEntityNotFound(err) {
				return nil, &NotFoundError{Field: "issue", Value: issueRef}
			}
			return nil, err
		}
		if resp.Issue == nil {
			return nil, &NotFoundError{Field: "issue", Value: issueRef}
		}
		for _, n := range resp.Issue.Comments.Nodes {
			comments = append(comments, commentFromNode(n))
			if limit > 0 && len(comments) >= limit {
				return comments, nil
			}
		}
		if !resp.Issue.Comments.PageInfo.HasNextPage {
			break
		}
		variables["after"] = resp.Issue.Comments.PageInfo.EndCursor
	}
	return comments, nil
}

// CreateComment adds a comment to the referenced issue.
func (s *Service) CreateComment(ctx context.Context, issueRef, body string) (*Comment, error) {
	if body == "" {
		return nil, validationf("comment body is required")
	}
	issueID, err := s.res.ResolveIssue(ctx, issueRef)
	if err != nil {
		return nil, err
	}
	input := Input{}
	input.Set("issueId", issueID)
	input.Set("body", body)
	var resp struct {
		CommentCreate commentPayload `json:"commentCreate"`
	}
	if err := s.client.Do(ctx, mutationCommentCreate, map[string]any{"input": input}, &resp); err != nil {
		return nil, remoteErr("create comment", issueRef, err)
	}
	if !resp.CommentCreate.Success || resp.CommentCreate.Comment == nil {
		return nil, remoteErr("create comment", issueRef, nil)
	}
	comment := commentFromNode(*resp.CommentCreate.Comment)
	return &comment, nil
}

// UpdateComment replaces a comment's body. Comments have no human
// identifier, so the reference must be an opaque ID.
func (s *Service) UpdateComment(ctx context.Context, id, body string) (*Comment, error) {
	if !IsOpaque(id) {
		return nil, validationf("comment reference must be an ID, got %q", id)
	}
	if body == "" {
		return nil, validationf("comment body is required")
	}
	input := Input{}
	input.Set("body", body)
	var resp struct {
		CommentUpdate commentPayload `json:"commentUpdate"`
	}
	vars := map[string]any{"id": id, "input": input}
	if err := s.client.Do(ctx, mutationCommentUpdate, vars, &resp); err != nil {
		return nil, remoteErr("update comment", id, err)
	}
	if !resp.CommentUpdate.Success || resp.CommentUpdate.Comment == nil {
		return nil, remoteErr("update comment", id, nil)
	}
	comment := commentFromNode(*resp.CommentUpdate.Comment)
	return &comment, nil
}

// DeleteComment deletes a comment by opaque ID.
func (s *Service) DeleteComment(ctx context.Context, id string) error {
	if !IsOpaque(id) {
		return validationf("comment reference must be an ID, got %q", id)
	}
	var resp struct {
		CommentDelete struct {
			Success bool `json:"success"`
		} `json:"commentDelete"`
	}
	if err := s.client.Do(ctx, mutationCommentDelete, map[string]any{"id": id}, &resp); err != nil {
		return remoteErr("delete comment", id, err)
	}
	if !resp.CommentDelete.Success {
		return remoteErr("delete comment", id, nil)
	}
	return nil
}
