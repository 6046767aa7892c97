package jira

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteValue(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "plain", value: "ABC", expected: `"ABC"`},
		{name: "with spaces", value: "In Progress", expected: `"In Progress"`},
		{name: "embedded quote", value: `Done "really"`, expected: `"Done \"really\""`},
		{name: "backslash", value: `a\b`, expected: `"a\\b"`},
		{name: "empty", value: "", expected: `""`},
		{name: "injection attempt", value: `" OR project = "XYZ`, expected: `"\" OR project = \"XYZ"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuoteValue(tt.value))
		})
	}
}
