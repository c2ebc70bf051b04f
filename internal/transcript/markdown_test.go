package transcript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdownBody(t *testing.T) {
	lines := []string{
		"System: You are helpful.",
		"Human: Hello",
		"  how are you?  ",
		"",
		"Assistant: Fine.",
		"--- Conversation Summary: ---",
		"We greeted.",
		"-----",
		"CONTEXT: earlier chat",
		"Total Tokens: 120",
		"Total Cost: $0.01",
	}
	want := strings.Join([]string{
		"## System: You are helpful.",
		"",
		"## Human: Hello",
		"how are you?",
		"",
		"",
		"## Assistant: Fine.",
		"",
		"## Summary",
		"We greeted.",
		"-----",
		"",
		"## Context",
		"**Total Tokens: 120**",
		"**Total Cost: $0.01**",
	}, "\n")
	assert.Equal(t, want, RenderMarkdownBody(lines))
}

func TestRenderMarkdown_Title(t *testing.T) {
	got := RenderMarkdown([]string{"Human: hi"}, "chat-04-02")
	assert.Equal(t, "# chat-04-02\n\n## Human: hi", got)
}

func TestStepMarkdown_TracksSpeaker(t *testing.T) {
	s, out := StepMarkdown(MarkdownState{}, "Human: hi: there")
	assert.Equal(t, "Human", s.Speaker)
	assert.Equal(t, []string{"## Human: hi: there"}, out)

	s, out = StepMarkdown(s, "Assistant: yo")
	assert.Equal(t, "Assistant", s.Speaker)
	assert.Equal(t, []string{"", "## Assistant: yo"}, out)
}

func TestStepMarkdown_DelimiterFlags(t *testing.T) {
	s, _ := StepMarkdown(MarkdownState{}, "--- Conversation Summary:")
	assert.True(t, s.InSummary)
	assert.False(t, s.InContext)

	s, _ = StepMarkdown(s, "CONTEXT: x")
	assert.True(t, s.InContext)
}

// 摘要和上下文标志置位后，后续行的输出与未置位时完全一致
func TestStepMarkdown_FlagsHaveNoEffect(t *testing.T) {
	lines := []string{"plain", "Total Cost: 1", "", "--- rule", "Human: x"}
	for _, flags := range []MarkdownState{
		{InSummary: true},
		{InContext: true},
		{InSummary: true, InContext: true},
	} {
		for _, l := range lines {
			_, flagged := StepMarkdown(flags, l)
			_, plain := StepMarkdown(MarkdownState{}, l)
			assert.Equal(t, plain, flagged, "line %q", l)
		}
	}
}

func TestRenderMarkdownBody_KeepsBlankLines(t *testing.T) {
	assert.Equal(t, "a\n\n\nb", RenderMarkdownBody([]string{"a", "", "   ", "b"}))
}
