package transcript

import (
	"fmt"
	"strings"
)

const summaryMarker = "Conversation Summary:"

// MarkdownState 逐行折叠时携带的状态
//
// InSummary 和 InContext 只在遇到分隔行时置位，目前不影响后续行的输出。
type MarkdownState struct {
	Speaker   string
	InSummary bool
	InContext bool
}

// StepMarkdown 处理一行，返回新状态和输出的行
func StepMarkdown(s MarkdownState, raw string) (MarkdownState, []string) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return s, []string{""}
	}

	if Classify(line).IsSpeaker() {
		var out []string
		if s.Speaker != "" {
			out = append(out, "")
		}
		s.Speaker, _, _ = strings.Cut(line, ":")
		return s, append(out, "## "+line)
	}

	switch {
	case strings.HasPrefix(line, "---"):
		if strings.Contains(line, summaryMarker) {
			s.InSummary = true
			return s, []string{"", "## Summary"}
		}
		return s, []string{line}
	case strings.HasPrefix(line, "CONTEXT:"):
		s.InContext = true
		return s, []string{"", "## Context"}
	case strings.HasPrefix(line, "Total Tokens:"), strings.HasPrefix(line, "Total Cost:"):
		return s, []string{"**" + line + "**"}
	}
	return s, []string{line}
}

// RenderMarkdownBody 把整份记录转为 Markdown 正文
func RenderMarkdownBody(lines []string) string {
	var s MarkdownState
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		var emitted []string
		s, emitted = StepMarkdown(s, line)
		out = append(out, emitted...)
	}
	return strings.Join(out, "\n")
}

// RenderMarkdown 以文件名作为一级标题
func RenderMarkdown(lines []string, title string) string {
	return fmt.Sprintf("# %s\n\n%s", title, RenderMarkdownBody(lines))
}
