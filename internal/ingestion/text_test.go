package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"CRLF normalized", "line one\r\nline two\r", "line one\nline two"},
		{"Trailing whitespace trimmed", "skills:  \npython  ", "skills:\npython"},
		{"Internal runs collapsed", "Python    Java\tGo", "Python Java Go"},
		{"Blank runs capped", "a\n\n\n\n\nb", "a\n\nb"},
		{"Surrounding whitespace trimmed", "\n\n  text  \n\n", "text"},
		{"Empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}
