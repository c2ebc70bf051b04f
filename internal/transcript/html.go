package transcript

import (
	"fmt"
	"html"
	"strings"
)

// Speaker 当前打开的 HTML 容器
type Speaker int

const (
	SpeakerNone Speaker = iota
	SpeakerHuman
	SpeakerAssistant
)

func (s Speaker) class() string {
	switch s {
	case SpeakerHuman:
		return "human"
	case SpeakerAssistant:
		return "assistant"
	}
	return ""
}

// HTMLOptions 控制 HTML 文档输出
type HTMLOptions struct {
	Title string
	// Escape 为 false 时行内容原样输出，与旧备份文件保持一致
	Escape bool
}

type htmlState struct {
	speaker Speaker
}

// stepHTML 处理一行，返回新状态和要追加的片段
func stepHTML(s htmlState, line string, escape bool) (htmlState, string) {
	var b strings.Builder

	next := s.speaker
	switch Classify(line) {
	case RoleHuman:
		next = SpeakerHuman
	case RoleAssistant:
		next = SpeakerAssistant
	}
	if next != s.speaker {
		if s.speaker != SpeakerNone {
			b.WriteString("</div>")
		}
		fmt.Fprintf(&b, `<div class="%s">`, next.class())
		s.speaker = next
	}

	if escape {
		line = html.EscapeString(line)
	}
	b.WriteString(line)
	b.WriteString("<br>")
	return s, b.String()
}

// finishHTML 关闭仍然打开的容器
func finishHTML(s htmlState) string {
	if s.speaker != SpeakerNone {
		return "</div>"
	}
	return ""
}

// RenderHTMLBody 只生成 body 内的片段
func RenderHTMLBody(lines []string, escape bool) string {
	var b strings.Builder
	var s htmlState
	for _, line := range lines {
		var frag string
		s, frag = stepHTML(s, line, escape)
		b.WriteString(frag)
	}
	b.WriteString(finishHTML(s))
	return b.String()
}

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; padding: 20px; }
        .human { background-color: #f0f0f0; padding: 10px; margin-bottom: 10px; border-radius: 5px; }
        .assistant { background-color: #e6f3ff; padding: 10px; margin-bottom: 10px; border-radius: 5px; }
    </style>
</head>
<body>
`

const htmlTail = `
</body>
</html>
`

// RenderHTML 生成完整的 HTML 文档，按说话人分组到 div 中
func RenderHTML(lines []string, opts HTMLOptions) string {
	title := opts.Title
	if opts.Escape {
		title = html.EscapeString(title)
	}

	var b strings.Builder
	fmt.Fprintf(&b, htmlHead, title)
	b.WriteString(RenderHTMLBody(lines, opts.Escape))
	b.WriteString(htmlTail)
	return b.String()
}
