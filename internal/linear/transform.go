package linear

import (
	"time"
)

// Wire shapes. The API nests every relationship and paginates every list;
// the transforms below flatten those into the output types in types.go.

type pageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type connection[T any] struct {
	Nodes    []T      `json:"nodes"`
	PageInfo pageInfo `json:"pageInfo"`
}

type userNode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	IsMe        bool   `json:"isMe"`
}

type teamRef struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

type teamNode struct {
	ID          string                `json:"id"`
	Key         string                `json:"key"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	States      *connection[State]    `json:"states"`
	Labels      *connection[labelNode] `json:"labels"`
}

type labelNode struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
	Team        *teamRef `json:"team"`
}

type projectNode struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	State       string    `json:"state"`
	TargetDate  string    `json:"targetDate"`
	Lead        *userNode `json:"lead"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

type milestoneNode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TargetDate  string `json:"targetDate"`
	Project     *struct {
		Name string `json:"name"`
	} `json:"project"`
}

type cycleNode struct {
	ID       string   `json:"id"`
	Number   float64  `json:"number"`
	Name     string   `json:"name"`
	StartsAt string   `json:"startsAt"`
	EndsAt   string   `json:"endsAt"`
	Team     *teamRef `json:"team"`
}

type commentNode struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	User      *userNode `json:"user"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

type attachmentNode struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	URL       string `json:"url"`
	CreatedAt string `json:"createdAt"`
}

type documentNode struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
	Project *struct {
		Name string `json:"name"`
	} `json:"project"`
	Creator   *userNode `json:"creator"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

type issueNode struct {
	ID          string    `json:"id"`
	Identifier  string    `json:"identifier"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Priority    float64   `json:"priority"`
	Estimate    *float64  `json:"estimate"`
	DueDate     string    `json:"dueDate"`
	State       *State    `json:"state"`
	Team        *teamRef  `json:"team"`
	Assignee    *userNode `json:"assignee"`
	Project     *struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"project"`
	Cycle            *cycleNode `json:"cycle"`
	ProjectMilestone *struct {
		Name string `json:"name"`
	} `json:"projectMilestone"`
	Parent *struct {
		Identifier string `json:"identifier"`
	} `json:"parent"`
	Labels    *connection[labelNode] `json:"labels"`
	CreatedAt string                 `json:"createdAt"`
	UpdatedAt string                 `json:"updatedAt"`
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02 15:04:05",
}

// canonicalTime normalizes whatever timestamp form the wire carried into
// RFC 3339 UTC. Date-only values (due dates, target dates) and anything
// unparseable pass through unchanged.
func canonicalTime(s string) string {
	if s == "" {
		return ""
	}
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return s
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return s
}

func userFromNode(n *userNode) *User {
	if n == nil {
		return nil
	}
	return &User{
		ID:          n.ID,
		Name:        n.Name,
		DisplayName: n.DisplayName,
		Email:       n.Email,
		IsMe:        n.IsMe,
	}
}

func labelFromNode(n labelNode) Label {
	l := Label{
		ID:          n.ID,
		Name:        n.Name,
		Color:       n.Color,
		Description: n.Description,
	}
	if n.Team != nil {
		l.TeamKey = n.Team.Key
	}
	return l
}

func teamFromNode(n teamNode) Team {
	t := Team{
		ID:          n.ID,
		Key:         n.Key,
		Name:        n.Name,
		Description: n.Description,
	}
	if n.States != nil {
		t.States = n.States.Nodes
	}
	return t
}

func projectFromNode(n projectNode) Project {
	return Project{
		ID:          n.ID,
		Name:        n.Name,
		URL:         n.URL,
		Description: n.Description,
		State:       n.State,
		TargetDate:  n.TargetDate,
		Lead:        userFromNode(n.Lead),
		CreatedAt:   canonicalTime(n.CreatedAt),
		UpdatedAt:   canonicalTime(n.UpdatedAt),
	}
}

func milestoneFromNode(n milestoneNode) Milestone {
	m := Milestone{
		ID:          n.ID,
		Name:        n.Name,
		Description: n.Description,
		TargetDate:  n.TargetDate,
	}
	if n.Project != nil {
		m.ProjectName = n.Project.Name
	}
	return m
}

func cycleFromNode(n cycleNode) Cycle {
	c := Cycle{
		ID:       n.ID,
		Number:   int(n.Number),
		Name:     n.Name,
		StartsAt: canonicalTime(n.StartsAt),
		EndsAt:   canonicalTime(n.EndsAt),
	}
	if n.Team != nil {
		c.TeamKey = n.Team.Key
	}
	return c
}

func commentFromNode(n commentNode) Comment {
	return Comment{
		ID:        n.ID,
		Body:      n.Body,
		User:      userFromNode(n.User),
		CreatedAt: canonicalTime(n.CreatedAt),
		UpdatedAt: canonicalTime(n.UpdatedAt),
	}
}

func attachmentFromNode(n attachmentNode) Attachment {
	return Attachment{
		ID:        n.ID,
		Title:     n.Title,
		Subtitle:  n.Subtitle,
		URL:       n.URL,
		CreatedAt: canonicalTime(n.CreatedAt),
	}
}

func documentFromNode(n documentNode) Document {
	d := Document{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		URL:       n.URL,
		Creator:   userFromNode(n.Creator),
		CreatedAt: canonicalTime(n.CreatedAt),
		UpdatedAt: canonicalTime(n.UpdatedAt),
	}
	if n.Project != nil {
		d.ProjectName = n.Project.Name
	}
	return d
}

func issueFromNode(n issueNode) Issue {
	issue := Issue{
		ID:          n.ID,
		Identifier:  n.Identifier,
		Title:       n.Title,
		Description: n.Description,
		URL:         n.URL,
		Priority:    int(n.Priority),
		Estimate:    n.Estimate,
		DueDate:     n.DueDate,
		State:       n.State,
		Assignee:    userFromNode(n.Assignee),
		CreatedAt:   canonicalTime(n.CreatedAt),
		UpdatedAt:   canonicalTime(n.UpdatedAt),
	}
	if n.Team != nil {
		issue.TeamKey = n.Team.Key
	}
	if n.Project != nil {
		issue.Project = n.Project.Name
	}
	if n.Cycle != nil {
		cycle := cycleFromNode(*n.Cycle)
		issue.Cycle = &cycle
	}
	if n.ProjectMilestone != nil {
		issue.Milestone = n.ProjectMilestone.Name
	}
	if n.Parent != nil {
		issue.Parent = n.Parent.Identifier
	}
	if n.Labels != nil {
		for _, l := range n.Labels.Nodes {
			issue.Labels = append(issue.Labels, l.Name)
		}
	}
	return issue
}
