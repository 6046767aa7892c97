// Package mocks provides common mock implementations for interfaces used throughout the tsugi codebase.
//
// These mocks are built using testify/mock and provide consistent behavior across all tests.
//
// # Available Mocks
//
//   - MockJiraClient: Mock for jira.JiraClient interface
//
// # Best Practices
//
// 1. Always use the factory functions (e.g., NewMockJiraClient) to create mocks
// 2. Reset mocks between test cases when reusing them
// 3. Use mock.MatchedBy for complex argument matching
//
// # Example
//
//	func TestSomething(t *testing.T) {
//	    client := mocks.NewMockJiraClient()
//	    client.On("GetIssue", mock.Anything, "ABC-1").
//	        Return(&jira.Issue{Key: "ABC-1"}, nil)
//
//	    controller, _ := panel.NewController(client, store, cache, prefetcher, renderer, log)
//	    // ...
//	}
package mocks
