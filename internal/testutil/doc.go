// Package testutil provides common test utilities for testing tsugi components.
//
// This package is organized into the following sub-packages:
//
//   - mocks: Common mock implementations for interfaces used throughout the codebase
//
// # Usage
//
// Import the specific sub-package you need:
//
//	import "github.com/douhashi/tsugi/internal/testutil/mocks"
package testutil
