package linear

import "context"

// CycleSelector narrows a cycle listing to a single schedule slot.
type CycleSelector string

const (
	CycleAny      CycleSelector = ""
	CycleActive   CycleSelector = "active"
	CycleNext     CycleSelector = "next"
	CyclePrevious CycleSelector = "previous"
)

// CycleListOptions filter a cycle listing. Cycles are schedule-generated
// and read-only through this tool.
type CycleListOptions struct {
	Team     string
	Selector CycleSelector
	Limit    int
}

// ListCycles lists cycles, optionally scoped to a team and a schedule slot.
func (s *Service) ListCycles(ctx context.Context, opts CycleListOptions) ([]Cycle, error) {
	filter := map[string]any{}
	if opts.Team != "" {
		teamID, err := s.res.ResolveTeam(ctx, opts.Team)
		if err != nil {
			return nil, err
		}
		filter["team"] = map[string]any{"id": map[string]any{"eq": teamID}}
	}
	switch opts.Selector {
	case CycleAny:
	case CycleActive:
		filter["isActive"] = map[string]any{"eq": true}
	case CycleNext:
		filter["isNext"] = map[string]any{"eq": true}
	case CyclePrevious:
		filter["isPrevious"] = map[string]any{"eq": true}
	default:
		return nil, validationf("unknown cycle selector %q (want active, next, or previous)", opts.Selector)
	}

	variables := map[string]any{
		"first":  pageSize(opts.Limit),
		"after":  nil,
		"filter": filter,
	}
	var cycles []Cycle
	for {
		var resp struct {
			Cycles connection[cycleNode] `json:"cycles"`
		}
		if err := s.client.Do(ctx, queryCycles, variables, &resp); err != nil {
			return nil, err
		}
		for _, n := range resp.Cycles.Nodes {
			cycles = append(cycles, cycleFromNode(n))
			if opts.Limit > 0 && len(cycles) >= opts.Limit {
				return cycles, nil
			}
		}
		if !resp.Cycles.PageInfo.HasNextPage {
			break
		}
		variables["after"] = resp.Cycles.PageInfo.EndCursor
	}
	return cycles, nil
}

// GetCycle fetches one cycle by number, name, or opaque ID, scoped to a
// team when given.
func (s *Service) GetCycle(ctx context.Context, ref, team string) (*Cycle, error) {
	teamID := ""
	if team != "" {
		var err error
		if teamID, err = s.res.ResolveTeam(ctx, team); err != nil {
			return nil, err
		}
	}
	id, err := s.res.ResolveCycle(ctx, ref, teamID)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Cycles connection[cycleNode] `json:"cycles"`
	}
	vars := map[string]any{
		"first":  1,
		"filter": map[string]any{"id": map[string]any{"eq": id}},
	}
	if err := s.client.Do(ctx, queryCycles, vars, &resp); err != nil {
		return nil, err
	}
	if len(resp.Cycles.Nodes) == 0 {
		return nil, &NotFoundError{Field: "cycle", Value: ref}
	}
	cycle := cycleFromNode(resp.Cycles.Nodes[0])
	return &cycle, nil
}
