package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want Role
	}{
		{"System: you are helpful", RoleSystem},
		{"Human: Hello there", RoleHuman},
		{"Assistant: Hi!", RoleAssistant},
		{"Human:", RoleHuman},
		{"human: lower case", RoleOther},
		{" Human: leading space", RoleOther},
		{"I said Human: hi", RoleOther},
		{"", RoleOther},
		{"System:Human:Assistant:", RoleSystem},
		{"Assistant:Human:", RoleAssistant},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.line))
		})
	}
}

func TestRole_IsSpeaker(t *testing.T) {
	assert.True(t, RoleSystem.IsSpeaker())
	assert.True(t, RoleHuman.IsSpeaker())
	assert.True(t, RoleAssistant.IsSpeaker())
	assert.False(t, RoleOther.IsSpeaker())
	assert.Equal(t, "assistant", RoleAssistant.String())
	assert.Equal(t, "other", RoleOther.String())
}

func TestSplit(t *testing.T) {
	assert.Equal(t, Transcript{"a", "b", ""}, Split("a\nb\n"))
	assert.Equal(t, Transcript{"a\r", "b"}, Split("a\r\nb"))
	assert.Equal(t, Transcript{""}, Split(""))
}
