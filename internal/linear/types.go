package linear

// Flat output shapes. These are what the CLI prints as JSON: paginated
// node lists are collapsed into plain slices, absent relationships are
// omitted, and timestamps are canonical RFC 3339 UTC strings.

// User is a workspace member.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
	IsMe        bool   `json:"isMe,omitempty"`
}

// Team is a Linear team.
type Team struct {
	ID          string  `json:"id"`
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	States      []State `json:"states,omitempty"`
}

// State is a workflow state within a team.
type State struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Label is an issue label, either team-scoped or workspace-wide.
type Label struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
	TeamKey     string `json:"teamKey,omitempty"`
}

// Project is a Linear project.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
	State       string `json:"state,omitempty"`
	Lead        *User  `json:"lead,omitempty"`
	TargetDate  string `json:"targetDate,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// Milestone is a project milestone.
type Milestone struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	TargetDate  string `json:"targetDate,omitempty"`
	ProjectName string `json:"projectName,omitempty"`
}

// Cycle is a team cycle. Cycles are schedule-generated and read-only.
type Cycle struct {
	ID       string `json:"id"`
	Number   int    `json:"number"`
	Name     string `json:"name,omitempty"`
	TeamKey  string `json:"teamKey,omitempty"`
	StartsAt string `json:"startsAt,omitempty"`
	EndsAt   string `json:"endsAt,omitempty"`
}

// Comment is an issue comment.
type Comment struct {
	ID        string `json:"id"`
	Body      string `json:"body"`
	User      *User  `json:"user,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Attachment is a URL attached to an issue. Creation is idempotent on the
// url+issue pair: re-creating updates the existing attachment in place.
type Attachment struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	Subtitle  string `json:"subtitle,omitempty"`
	URL       string `json:"url"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Document is a Linear document, optionally tied to a project.
type Document struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content,omitempty"`
	URL         string `json:"url,omitempty"`
	ProjectName string `json:"projectName,omitempty"`
	Creator     *User  `json:"creator,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// DocumentLink is a document reference extracted from an issue's
// attachments.
type DocumentLink struct {
	Title string `json:"title,omitempty"`
	URL   string `json:"url"`
}

// Issue is a Linear issue, flattened for output.
type Issue struct {
	ID          string   `json:"id"`
	Identifier  string   `json:"identifier"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	Priority    int      `json:"priority"`
	Estimate    *float64 `json:"estimate,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"`
	State       *State   `json:"state,omitempty"`
	TeamKey     string   `json:"teamKey,omitempty"`
	Assignee    *User    `json:"assignee,omitempty"`
	Project     string   `json:"project,omitempty"`
	Cycle       *Cycle   `json:"cycle,omitempty"`
	Milestone   string   `json:"milestone,omitempty"`
	Parent      string   `json:"parent,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}
