package catalog

import (
	"fmt"
	"strings"
)

var idReplacer = strings.NewReplacer("/", "-", ":", "-")

// ElementID 模型 id 对应的按钮 DOM id
func ElementID(modelID string) string {
	return "open-router-model-" + idReplacer.Replace(modelID)
}

// Buttons 每个模型一个 <button>，按目录顺序
func Buttons(names Pairs) string {
	lines := make([]string, len(names))
	for i, e := range names {
		lines[i] = fmt.Sprintf(`<button id="%s" data-value="%s">%s</button>`, ElementID(e.Key), e.Key, e.Value)
	}
	return strings.Join(lines, "\n")
}

// SelectionListeners 点击按钮时选中模型
func SelectionListeners(ids []string) string {
	lines := make([]string, len(ids))
	for i, id := range ids {
		lines[i] = fmt.Sprintf("document.getElementById('%s').addEventListener('click', () => selectModel('%s'));", ElementID(id), id)
	}
	return strings.Join(lines, "\n")
}

// TooltipListeners 悬停时显示模型描述
func TooltipListeners(ids []string) string {
	lines := make([]string, len(ids))
	for i, id := range ids {
		lines[i] = fmt.Sprintf("document.getElementById('%s').addEventListener('mouseover', (event) => showCustomTooltip(modelDescriptions['%s'], event.currentTarget));", ElementID(id), id)
	}
	return strings.Join(lines, "\n")
}
