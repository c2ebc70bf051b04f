package transcript

import "strings"

// RenderPlainText 在每个说话人标记行前后各插入一个空行
func RenderPlainText(lines []string) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if Classify(line).IsSpeaker() {
			out = append(out, "", line, "")
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
