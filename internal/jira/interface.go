package jira

import "context"

// JiraClient はJira APIクライアントのインターフェース
type JiraClient interface {
	GetMyself(ctx context.Context) (*User, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	GetProject(ctx context.Context, projectKey string) (*Project, error)
	GetProjectStatuses(ctx context.Context, projectKey string) ([]*ProjectStatusGroup, error)
	GetIssue(ctx context.Context, issueKey string) (*Issue, error)
	SearchIssues(ctx context.Context, opts *SearchOptions) (*SearchResult, error)
	GetTransitions(ctx context.Context, issueKey string) ([]*Transition, error)
	DoTransition(ctx context.Context, issueKey, transitionID string) error
	CreateIssue(ctx context.Context, fields *CreateIssueFields) (*CreatedIssue, error)
	AssignIssue(ctx context.Context, issueKey string, assignee *User) error
	ListComments(ctx context.Context, issueKey string) ([]*Comment, error)
	AddComment(ctx context.Context, issueKey, body string) (*Comment, error)
}
