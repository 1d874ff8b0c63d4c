package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCrisis(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"empty", "", false},
		{"plain greeting", "hello, how are you today?", false},
		{"suicide keyword", "I have been thinking about suicide", true},
		{"kill myself", "sometimes I want to KILL MYSELF", true},
		{"want to die", "i just want to die", true},
		{"self harm", "I've been struggling with self harm", true},
		{"give up", "I think I should just give up", true},
		{"cant go on", "I can't go on like this anymore", true},
		{"mixed case", "No Reason To Live", true},
		{"sad but not crisis", "I'm feeling really sad and lonely", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCrisis(tt.message))
		})
	}
}
