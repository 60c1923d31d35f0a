package linear

import (
	"context"
)

// IssueListOptions filter an issue listing. Every reference field accepts a
// human identifier or an opaque ID.
type IssueListOptions struct {
	Team     string
	State    string
	Assignee string
	Project  string
	Label    string
	Cycle    string
	Limit    int
}

// IssueCreateOptions carry the fields of a new issue. Title and Team are
// required; everything else is optional and omitted from the mutation when
// unset.
type IssueCreateOptions struct {
	Team        string
	Title       string
	Description string
	Priority    *int
	Estimate    *float64
	DueDate     string
	Assignee    string
	State       string
	Project     string
	Parent      string
	Cycle       string
	Milestone   string
	Labels      []string
}

// IssueUpdateOptions carry a partial update. A nil pointer means "leave the
// field alone"; a pointer to an empty string means "clear the field", which
// is sent as an explicit null. Labels is untouched when nil; how it merges
// with existing labels is controlled by LabelMode.
type IssueUpdateOptions struct {
	Title       *string
	Description *string
	Priority    *int
	Estimate    *float64
	DueDate     *string
	Assignee    *string
	State       *string
	Project     *string
	Parent      *string
	Cycle       *string
	Milestone   *string
	Team        *string
	Labels      []string
	LabelMode   LabelMode
}

type issuePayload struct {
	Success bool       `json:"success"`
	Issue   *issueNode `json:"issue"`
}

// ListIssues lists issues matching the given filters, resolving human
// references to IDs first and paginating until Limit (or the end).
func (s *Service) ListIssues(ctx context.Context, opts IssueListOptions) ([]Issue, error) {
	refs := IssueRefs{
		Team:     opts.Team,
		Project:  opts.Project,
		Assignee: opts.Assignee,
		State:    opts.State,
		Cycle:    opts.Cycle,
	}
	if opts.Label != "" {
		refs.Labels = []string{opts.Label}
	}
	resolved, err := s.res.ResolveIssueRefs(ctx, refs)
	if err != nil {
		return nil, err
	}

	filter := map[string]any{}
	if resolved.TeamID != "" {
		filter["team"] = map[string]any{"id": map[string]any{"eq": resolved.TeamID}}
	}
	if resolved.StateID != "" {
		filter["state"] = map[string]any{"id": map[string]any{"eq": resolved.StateID}}
	}
	if resolved.AssigneeID != "" {
		filter["assignee"] = map[string]any{"id": map[string]any{"eq": resolved.AssigneeID}}
	}
	if resolved.ProjectID != "" {
		filter["project"] = map[string]any{"id": map[string]any{"eq": resolved.ProjectID}}
	}
	if resolved.CycleID != "" {
		filter["cycle"] = map[string]any{"id": map[string]any{"eq": resolved.CycleID}}
	}
	if len(resolved.LabelIDs) > 0 {
		filter["labels"] = map[string]any{"some": map[string]any{"id": map[string]any{"eq": resolved.LabelIDs[0]}}}
	}

	variables := map[string]any{
		"first":  pageSize(opts.Limit),
		"after":  nil,
		"filter": filter,
	}

	var issues []Issue
	for {
		var resp struct {
			Issues connection[issueNode] `json:"issues"`
		}
		if err := s.client.Do(ctx, queryIssues, variables, &resp); err != nil {
			return nil, err
		}
		for _, n := range resp.Issues.Nodes {
			issues = append(issues, issueFromNode(n))
			if opts.Limit > 0 && len(issues) >= opts.Limit {
				return issues, nil
			}
		}
		if !resp.Issues.PageInfo.HasNextPage {
			break
		}
		variables["after"] = resp.Issues.PageInfo.EndCursor
	}
	return issues, nil
}

// GetIssue fetches one issue by identifier ("ABC-123") or opaque ID.
func (s *Service) GetIssue(ctx context.Context, ref string) (*Issue, error) {
	node, err := s.fetchIssueNode(ctx, ref)
	if err != nil {
		return nil, err
	}
	issue := issueFromNode(*node)
	return &issue, nil
}

func (s *Service) fetchIssueNode(ctx context.Context, ref string) (*issueNode, error) {
	var resp struct {
		Issue *issueNode `json:"issue"`
	}
	if err := s.client.Do(ctx, queryIssue, map[string]any{"id": ref}, &resp); err != nil {
		if isEntityNotFound(err) {
			return nil, &NotFoundError{Field: "issue", Value: ref}
		}
		return nil, err
	}
	if resp.Issue == nil {
		return nil, &NotFoundError{Field: "issue", Value: ref}
	}
	return resp.Issue, nil
}

// CreateIssue resolves the attached references in one batched pass and
// creates the issue.
func (s *Service) CreateIssue(ctx context.Context, opts IssueCreateOptions) (*Issue, error) {
	if opts.Title == "" {
		return nil, validationf("issue title is required")
	}
	if opts.Team == "" {
		return nil, validationf("issue team is required")
	}
	if opts.Priority != nil && (*opts.Priority < 0 || *opts.Priority > 4) {
		return nil, validationf("priority must be between 0 and 4, got %d", *opts.Priority)
	}

	resolved, err := s.res.ResolveIssueRefs(ctx, IssueRefs{
		Team:      opts.Team,
		Project:   opts.Project,
		Assignee:  opts.Assignee,
		State:     opts.State,
		Parent:    opts.Parent,
		Cycle:     opts.Cycle,
		Milestone: opts.Milestone,
		Labels:    opts.Labels,
	})
	if err != nil {
		return nil, err
	}

	input := Input{}
	input.Set("teamId", resolved.TeamID)
	input.Set("title", opts.Title)
	input.SetNonEmpty("description", opts.Description)
	input.SetNonEmpty("dueDate", opts.DueDate)
	input.SetNonEmpty("assigneeId", resolved.AssigneeID)
	input.SetNonEmpty("stateId", resolved.StateID)
	input.SetNonEmpty("projectId", resolved.ProjectID)
	input.SetNonEmpty("parentId", resolved.ParentID)
	input.SetNonEmpty("cycleId", resolved.CycleID)
	input.SetNonEmpty("projectMilestoneId", resolved.MilestoneID)
	if opts.Priority != nil {
		input.Set("priority", *opts.Priority)
	}
	if opts.Estimate != nil {
		input.Set("estimate", *opts.Estimate)
	}
	if len(resolved.LabelIDs) > 0 {
		input.Set("labelIds", resolved.LabelIDs)
	}

	var resp struct {
		IssueCreate issuePayload `json:"issueCreate"`
	}
	if err := s.client.Do(ctx, mutationIssueCreate, map[string]any{"input": input}, &resp); err != nil {
		return nil, remoteErr("create issue", opts.Title, err)
	}
	if !resp.IssueCreate.Success || resp.IssueCreate.Issue == nil {
		return nil, remoteErr("create issue", opts.Title, nil)
	}
	issue := issueFromNode(*resp.IssueCreate.Issue)
	return &issue, nil
}

// UpdateIssue applies a partial update to the referenced issue. Only the
// explicitly-set fields travel in the mutation variables; clears travel as
// explicit nulls.
func (s *Service) UpdateIssue(ctx context.Context, ref string, opts IssueUpdateOptions) (*Issue, error) {
	if opts.Title != nil && *opts.Title == "" {
		return nil, validationf("issue title cannot be cleared")
	}
	if opts.Priority != nil && (*opts.Priority < 0 || *opts.Priority > 4) {
		return nil, validationf("priority must be between 0 and 4, got %d", *opts.Priority)
	}

	// One lookup gets the UUID, the team for scoping, and the existing
	// label IDs for merge mode adding.
	node, err := s.fetchIssueNode(ctx, ref)
	if err != nil {
		return nil, err
	}
	teamID := ""
	if opts.Team != nil && *opts.Team != "" {
		teamID, err = s.res.ResolveTeam(ctx, *opts.Team)
		if err != nil {
			return nil, err
		}
	} else if node.Team != nil {
		teamID = node.Team.ID
	}

	refs := IssueRefs{}
	if opts.Project != nil && *opts.Project != "" {
		refs.Project = *opts.Project
	}
	if opts.Assignee != nil && *opts.Assignee != "" {
		refs.Assignee = *opts.Assignee
	}
	if opts.State != nil && *opts.State != "" {
		refs.State = *opts.State
	}
	if opts.Parent != nil && *opts.Parent != "" {
		refs.Parent = *opts.Parent
	}
	if opts.Cycle != nil && *opts.Cycle != "" {
		refs.Cycle = *opts.Cycle
	}
	if opts.Milestone != nil && *opts.Milestone != "" {
		refs.Milestone = *opts.Milestone
	}
	refs.Labels = opts.Labels
	resolved, err := s.resolveScoped(ctx, refs, teamID)
	if err != nil {
		return nil, err
	}

	input := Input{}
	if opts.Title != nil {
		input.Set("title", *opts.Title)
	}
	if teamID != "" && opts.Team != nil {
		input.Set("teamId", teamID)
	}
	setOrClear(input, "description", opts.Description, "")
	setOrClear(input, "dueDate", opts.DueDate, "")
	setOrClear(input, "assigneeId", opts.Assignee, resolved.AssigneeID)
	setOrClear(input, "stateId", opts.State, resolved.StateID)
	setOrClear(input, "projectId", opts.Project, resolved.ProjectID)
	setOrClear(input, "parentId", opts.Parent, resolved.ParentID)
	setOrClear(input, "cycleId", opts.Cycle, resolved.CycleID)
	setOrClear(input, "projectMilestoneId", opts.Milestone, resolved.MilestoneID)
	if opts.Priority != nil {
		input.Set("priority", *opts.Priority)
	}
	if opts.Estimate != nil {
		input.Set("estimate", *opts.Estimate)
	}
	if opts.Labels != nil {
		existing := make([]string, 0)
		if node.Labels != nil {
			for _, l := range node.Labels.Nodes {
				existing = append(existing, l.ID)
			}
		}
		input.Set("labelIds", mergeLabelIDs(opts.LabelMode, existing, resolved.LabelIDs))
	}
	if input.Empty() {
		return nil, validationf("nothing to update")
	}

	var resp struct {
		IssueUpdate issuePayload `json:"issueUpdate"`
	}
	vars := map[string]any{"id": node.ID, "input": input}
	if err := s.client.Do(ctx, mutationIssueUpdate, vars, &resp); err != nil {
		return nil, remoteErr("update issue", ref, err)
	}
	if !resp.IssueUpdate.Success || resp.IssueUpdate.Issue == nil {
		return nil, remoteErr("update issue", ref, nil)
	}
	issue := issueFromNode(*resp.IssueUpdate.Issue)
	return &issue, nil
}

// resolveScoped resolves refs with an already-known team scope, without
// re-resolving the team.
func (s *Service) resolveScoped(ctx context.Context, refs IssueRefs, teamID string) (*ResolvedIssueRefs, error) {
	resolved, err := s.res.ResolveIssueRefs(ctx, IssueRefs{
		Project:   refs.Project,
		Assignee:  refs.Assignee,
		Parent:    refs.Parent,
		Milestone: refs.Milestone,
	})
	if err != nil {
		return nil, err
	}
	if refs.State != "" {
		if resolved.StateID, err = s.res.ResolveState(ctx, refs.State, teamID); err != nil {
			return nil, err
		}
	}
	if refs.Cycle != "" {
		if resolved.CycleID, err = s.res.ResolveCycle(ctx, refs.Cycle, teamID); err != nil {
			return nil, err
		}
	}
	if len(refs.Labels) > 0 {
		if resolved.LabelIDs, err = s.res.ResolveLabels(ctx, refs.Labels, teamID); err != nil {
			return nil, err
		}
	}
	return resolved, nil
}

// setOrClear implements the tri-state update contract for reference fields:
// nil leaves the key out entirely, empty string sends an explicit null, and
// a value sends the resolved ID.
func setOrClear(input Input, key string, opt *string, resolvedID string) {
	if opt == nil {
		return
	}
	if *opt == "" {
		input.Clear(key)
		return
	}
	if resolvedID != "" {
		input.Set(key, resolvedID)
		return
	}
	input.Set(key, *opt)
}

// DeleteIssue moves the referenced issue to trash.
func (s *Service) DeleteIssue(ctx context.Context, ref string) error {
	id, err := s.res.ResolveIssue(ctx, ref)
	if err != nil {
		return err
	}
	var resp struct {
		IssueDelete struct {
			Success bool `json:"success"`
		} `json:"issueDelete"`
	}
	if err := s.client.Do(ctx, mutationIssueDelete, map[string]any{"id": id}, &resp); err != nil {
		return remoteErr("delete issue", ref, err)
	}
	if !resp.IssueDelete.Success {
		return remoteErr("delete issue", ref, nil)
	}
	return nil
}
