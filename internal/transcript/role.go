package transcript

import "strings"

// Role 一行文本在对话中的角色
type Role int

const (
	RoleOther Role = iota
	RoleSystem
	RoleHuman
	RoleAssistant
)

// 前缀按优先级排列，只取第一个匹配
var speakerPrefixes = []struct {
	prefix string
	role   Role
}{
	{"System:", RoleSystem},
	{"Human:", RoleHuman},
	{"Assistant:", RoleAssistant},
}

// Classify 按前缀判断行的角色（区分大小写）
func Classify(line string) Role {
	for _, p := range speakerPrefixes {
		if strings.HasPrefix(line, p.prefix) {
			return p.role
		}
	}
	return RoleOther
}

// IsSpeaker 是否为说话人标记行
func (r Role) IsSpeaker() bool {
	return r != RoleOther
}

func (r Role) String() string {
	switch r {
	case RoleSystem:
		return "system"
	case RoleHuman:
		return "human"
	case RoleAssistant:
		return "assistant"
	default:
		return "other"
	}
}

// Transcript 一份聊天记录的有序行
type Transcript []string

// Split 按 \n 切分文件内容，行尾的 \r 保留为内容
func Split(content string) Transcript {
	return strings.Split(content, "\n")
}
