package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/douhashi/tsugi/internal/jira"
)

// MockJiraClient is a mock implementation of jira.JiraClient interface
type MockJiraClient struct {
	mock.Mock
}

// NewMockJiraClient creates a new instance of MockJiraClient
func NewMockJiraClient() *MockJiraClient {
	return &MockJiraClient{}
}

// GetMyself mocks the GetMyself method
func (m *MockJiraClient) GetMyself(ctx context.Context) (*jira.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jira.User), args.Error(1)
}

// ListProjects mocks the ListProjects method
func (m *MockJiraClient) ListProjects(ctx context.Context) ([]*jira.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*jira.Project), args.Error(1)
}

// GetProject mocks the GetProject method
func (m *MockJiraClient) GetProject(ctx context.Context, projectKey string) (*jira.Project, error) {
	args := m.Called(ctx, projectKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jira.Project), args.Error(1)
}

// GetProjectStatuses mocks the GetProjectStatuses method
func (m *MockJiraClient) GetProjectStatuses(ctx context.Context, projectKey string) ([]*jira.ProjectStatusGroup, error) {
	args := m.Called(ctx, projectKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*jira.ProjectStatusGroup), args.Error(1)
}

// GetIssue mocks the GetIssue method
func (m *MockJiraClient) GetIssue(ctx context.Context, issueKey string) (*jira.Issue, error) {
	args := m.Called(ctx, issueKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jira.Issue), args.Error(1)
}

// SearchIssues mocks the SearchIssues method
func (m *MockJiraClient) SearchIssues(ctx context.Context, opts *jira.SearchOptions) (*jira.SearchResult, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jira.SearchResult), args.Error(1)
}

// GetTransitions mocks the GetTransitions method
func (m *MockJiraClient) GetTransitions(ctx context.Context, issueKey string) ([]*jira.Transition, error) {
	args := m.Called(ctx, issueKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*jira.Transition), args.Error(1)
}

// DoTransition mocks the DoTransition method
func (m *MockJiraClient) DoTransition(ctx context.Context, issueKey, transitionID string) error {
	args := m.Called(ctx, issueKey, transitionID)
	return args.Error(0)
}

// CreateIssue mocks the CreateIssue method
func (m *MockJiraClient) CreateIssue(ctx context.Context, fields *jira.CreateIssueFields) (*jira.CreatedIssue, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jira.CreatedIssue), args.Error(1)
}

// AssignIssue mocks the AssignIssue method
func (m *MockJiraClient) AssignIssue(ctx context.Context, issueKey string, assignee *jira.User) error {
	args := m.Called(ctx, issueKey, assignee)
	return args.Error(0)
}

// ListComments mocks the ListComments method
func (m *MockJiraClient) ListComments(ctx context.Context, issueKey string) ([]*jira.Comment, error) {
	args := m.Called(ctx, issueKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*jira.Comment), args.Error(1)
}

// AddComment mocks the AddComment method
func (m *MockJiraClient) AddComment(ctx context.Context, issueKey, body string) (*jira.Comment, error) {
	args := m.Called(ctx, issueKey, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jira.Comment), args.Error(1)
}
