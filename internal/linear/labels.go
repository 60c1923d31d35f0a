package linear

import "context"

// LabelListOptions filter a label listing. With a team, both the team's
// labels and workspace labels are returned.
type LabelListOptions struct {
	Team  string
	Limit int
}

// LabelCreateOptions carry the fields of a new label. Team is optional: a
// label without a team is workspace-wide.
type LabelCreateOptions struct {
	Name        string
	Team        string
	Color       string
	Description string
}

// LabelUpdateOptions carry a partial label update with the usual tri-state
// contract on pointer fields.
type LabelUpdateOptions struct {
	Name        *string
	Color       *string
	Description *string
}

type labelPayload struct {
	Success    bool       `json:"success"`
	IssueLabel *labelNode `json:"issueLabel"`
}

// ListLabels lists labels, optionally scoped to a team (plus workspace
// labels, which apply everywhere).
func (s *Service) ListLabels(ctx context.Context, opts LabelListOptions) ([]Label, error) {
	filter := map[string]any{}
	if opts.Team != "" {
		teamID, err := s.res.ResolveTeam(ctx, opts.Team)
		if err != nil {
			return nil, err
		}
		filter["or"] = []map[string]any{
			{"team": map[string]any{"id": map[string]any{"eq": teamID}}},
			{"team": map[string]any{"null": true}},
		}
	}
	variables := map[string]any{
		"first":  pageSize(opts.Limit),
		"after":  nil,
		"filter": filter,
	}
	var labels []Label
	for {
		var resp struct {
			IssueLabels connection[labelNode] `json:"issueLabels"`
		}
		if err := s.client.Do(ctx, queryLabels, variables, &resp); err != nil {
			return nil, err
		}
		for _, n := range resp.IssueLabels.Nodes {
			labels = append(labels, labelFromNode(n))
			if opts.Limit > 0 && len(labels) >= opts.Limit {
				return labels, nil
			}
		}
		if !resp.IssueLabels.PageInfo.HasNextPage {
			break
		}
		variables["after"] = resp.IssueLabels.PageInfo.EndCursor
	}
	return labels, nil
}

// CreateLabel creates a label, team-scoped when a team is given.
func (s *Service) CreateLabel(ctx context.Context, opts LabelCreateOptions) (*Label, error) {
	if opts.Name == "" {
		return nil, validationf("label name is required")
	}
	input := Input{}
	input.Set("name", opts.Name)
	input.SetNonEmpty("color", opts.Color)
	input.SetNonEmpty("description", opts.Description)
	if opts.Team != "" {
		teamID, err := s.res.ResolveTeam(ctx, opts.Team)
		if err != nil {
			return nil, err
		}
		input.Set("teamId", teamID)
	}
	var resp struct {
		IssueLabelCreate labelPayload `json:"issueLabelCreate"`
	}
	if err := s.client.Do(ctx, mutationLabelCreate, map[string]any{"input": input}, &resp); err != nil {
		return nil, remoteErr("create label", opts.Name, err)
	}
	if !resp.IssueLabelCreate.Success || resp.IssueLabelCreate.IssueLabel == nil {
		return nil, remoteErr("create label", opts.Name, nil)
	}
	label := labelFromNode(*resp.IssueLabelCreate.IssueLabel)
	return &label, nil
}

// UpdateLabel applies a partial update to a label referenced by name or
// opaque ID. Team scoping disambiguates same-named labels.
func (s *Service) UpdateLabel(ctx context.Context, ref, team string, opts LabelUpdateOptions) (*Label, error) {
	if opts.Name != nil && *opts.Name == "" {
		return nil, validationf("label name cannot be cleared")
	}
	id, err := s.resolveLabelRef(ctx, ref, team)
	if err != nil {
		return nil, err
	}
	input := Input{}
	if opts.Name != nil {
		input.Set("name", *opts.Name)
	}
	if opts.Color != nil {
		if *opts.Color == "" {
			input.Clear("color")
		} else {
			input.Set("color", *opts.Color)
		}
	}
	if opts.Description != nil {
		if *opts.Description == "" {
			input.Clear("description")
		} else {
			input.Set("description", *opts.Description)
		}
	}
	if input.Empty() {
		return nil, validationf("nothing to update")
	}
	var resp struct {
		IssueLabelUpdate labelPayload `json:"issueLabelUpdate"`
	}
	vars := map[string]any{"id": id, "input": input}
	if err := s.client.Do(ctx, mutationLabelUpdate, vars, &resp); err != nil {
		return nil, remoteErr("update label", ref, err)
	}
	if !resp.IssueLabelUpdate.Success || resp.IssueLabelUpdate.IssueLabel == nil {
		return nil, remoteErr("update label", ref, nil)
	}
	label := labelFromNode(*resp.IssueLabelUpdate.IssueLabel)
	return &label, nil
}

// DeleteLabel deletes a label referenced by name or opaque ID.
func (s *Service) DeleteLabel(ctx context.Context, ref, team string) error {
	id, err := s.resolveLabelRef(ctx, ref, team)
	if err != nil {
		return err
	}
	var resp struct {
		IssueLabelDelete struct {
			Success bool `json:"success"`
		} `json:"issueLabelDelete"`
	}
	if err := s.client.Do(ctx, mutationLabelDelete, map[string]any{"id": id}, &resp); err != nil {
		return remoteErr("delete label", ref, err)
	}
	if !resp.IssueLabelDelete.Success {
		return remoteErr("delete label", ref, nil)
	}
	return nil
}

func (s *Service) resolveLabelRef(ctx context.Context, ref, team string) (string, error) {
	teamID := ""
	if team != "" {
		var err error
		if teamID, err = s.res.ResolveTeam(ctx, team); err != nil {
			return "", err
		}
	}
	ids, err := s.res.ResolveLabels(ctx, []string{ref}, teamID)
	if err != nil {
		return "", err
	}
	return ids[0], nil
}
