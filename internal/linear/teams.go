package linear

import "context"

// ListTeams lists all teams in the workspace.
func (s *Service) ListTeams(ctx context.Context, limit int) ([]Team, error) {
	variables := map[string]any{
		"first":  pageSize(limit),
		"after":  nil,
		"filter": nil,
	}
	var teams []Team
	for {
		var resp struct {
			Teams connection[teamNode] `json:"teams"`
		}
		if err := s.client.Do(ctx, queryTeams, variables, &resp); err != nil {
			return nil, err
		}
		for _, n := range resp.Teams.Nodes {
			teams = append(teams, teamFromNode(n))
			if limit > 0 && len(teams) >= limit {
				return teams, nil
			}
		}
		if !resp.Teams.PageInfo.HasNextPage {
			break
		}
		variables["after"] = resp.Teams.PageInfo.EndCursor
	}
	return teams, nil
}

// GetTeam fetches one team by key, name, or opaque ID, including its
// workflow states.
func (s *Service) GetTeam(ctx context.Context, ref string) (*Team, error) {
	id, err := s.res.ResolveTeam(ctx, ref)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Team *teamNode `json:"team"`
	}
	if err := s.client.Do(ctx, queryTeam, map[string]any{"id": id}, &resp); err != nil {
		if isEntityNotFound(err) {
			return nil, &NotFoundError{Field: "team", Value: ref}
		}
		return nil, err
	}
	if resp.Team == nil {
		return nil, &NotFoundError{Field: "team", Value: ref}
	}
	team := teamFromNode(*resp.Team)
	return &team, nil
}
