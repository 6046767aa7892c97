package jira

// Status represents a Jira workflow status.
type Status struct {
	ID             string          `json:"id,omitempty"`
	Name           string          `json:"name,omitempty"`
	Description    string          `json:"description,omitempty"`
	StatusCategory *StatusCategory `json:"statusCategory,omitempty"`
}

// StatusCategory represents the category grouping of a Jira status.
type StatusCategory struct {
	ID   int    `json:"id,omitempty"`
	Key  string `json:"key,omitempty"`
	Name string `json:"name,omitempty"`
}

// IssueType represents a Jira issue type.
type IssueType struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Subtask bool   `json:"subtask,omitempty"`
}

// Project represents a Jira project.
type Project struct {
	ID         string       `json:"id,omitempty"`
	Key        string       `json:"key,omitempty"`
	Name       string       `json:"name,omitempty"`
	IssueTypes []*IssueType `json:"issueTypes,omitempty"`
}

// User represents a Jira user. Cloud populates AccountID, Server/DC
// populates Name; neither is guaranteed on both.
type User struct {
	AccountID    string `json:"accountId,omitempty"`
	Name         string `json:"name,omitempty"`
	DisplayName  string `json:"displayName,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
}

// Issue represents a Jira issue.
type Issue struct {
	ID     string       `json:"id,omitempty"`
	Key    string       `json:"key,omitempty"`
	Fields *IssueFields `json:"fields,omitempty"`
}

// IssueFields represents the fields of a Jira issue. Almost every field
// is optional; Cloud and Server differ in which ones are populated.
type IssueFields struct {
	Summary     *string    `json:"summary,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *Status    `json:"status,omitempty"`
	IssueType   *IssueType `json:"issuetype,omitempty"`
	Assignee    *User      `json:"assignee,omitempty"`
	Reporter    *User      `json:"reporter,omitempty"`
	Project     *Project   `json:"project,omitempty"`
	Created     *string    `json:"created,omitempty"`
	Updated     *string    `json:"updated,omitempty"`
	Labels      []string   `json:"labels,omitempty"`
}

// Transition represents an available workflow transition for an issue.
type Transition struct {
	ID   string  `json:"id,omitempty"`
	Name string  `json:"name,omitempty"`
	To   *Status `json:"to,omitempty"`
}

// ProjectStatusGroup is one element of the GET project/{key}/statuses
// response: the status set available to a single issue type.
type ProjectStatusGroup struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name,omitempty"`
	Subtask  bool      `json:"subtask,omitempty"`
	Statuses []*Status `json:"statuses,omitempty"`
}

// SearchResult represents the response of an issue search.
type SearchResult struct {
	StartAt    int      `json:"startAt"`
	MaxResults int      `json:"maxResults"`
	Total      int      `json:"total"`
	Issues     []*Issue `json:"issues,omitempty"`
}

// SearchOptions specifies parameters for issue search requests.
type SearchOptions struct {
	JQL        string   `json:"jql"`
	StartAt    int      `json:"startAt,omitempty"`
	MaxResults int      `json:"maxResults,omitempty"`
	Fields     []string `json:"fields,omitempty"`
}

// Comment represents a comment on a Jira issue.
type Comment struct {
	ID      string `json:"id,omitempty"`
	Body    string `json:"body,omitempty"`
	Author  *User  `json:"author,omitempty"`
	Created string `json:"created,omitempty"`
	Updated string `json:"updated,omitempty"`
}

// CreateIssueFields represents the fields sent when creating an issue.
type CreateIssueFields struct {
	Project     *Project   `json:"project"`
	Summary     string     `json:"summary"`
	Description string     `json:"description,omitempty"`
	IssueType   *IssueType `json:"issuetype"`
	Assignee    *User      `json:"assignee,omitempty"`
	Labels      []string   `json:"labels,omitempty"`
}

// CreatedIssue represents the response of a successful issue creation.
type CreatedIssue struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// String returns a pointer to the given string value.
func String(v string) *string {
	return &v
}

// Bool returns a pointer to the given bool value.
func Bool(v bool) *bool {
	return &v
}
