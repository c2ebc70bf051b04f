// Package catalog 从模型目录 JSON 生成前端用的映射表、按钮和事件脚本。
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

type Model struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Catalog struct {
	Data []Model `json:"data"`
}

// Entry 保持目录顺序的键值对
type Entry struct {
	Key   string
	Value string
}

// Pairs 有序映射，序列化为 JSON 对象时保留顺序
type Pairs []Entry

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return &c, nil
}

func Load(fs afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// NameMap id -> name
func (c *Catalog) NameMap() Pairs {
	out := make(Pairs, 0, len(c.Data))
	for _, m := range c.Data {
		out = out.set(m.ID, m.Name)
	}
	return out
}

// DescriptionMap id -> description
func (c *Catalog) DescriptionMap() Pairs {
	out := make(Pairs, 0, len(c.Data))
	for _, m := range c.Data {
		out = out.set(m.ID, m.Description)
	}
	return out
}

// set 重复的键覆盖旧值但保留首次出现的位置
func (p Pairs) set(key, value string) Pairs {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Entry{Key: key, Value: value})
}

// Reverse 交换键和值，值重复时后出现的键胜出
func (p Pairs) Reverse() Pairs {
	out := make(Pairs, 0, len(p))
	for _, e := range p {
		out = out.set(e.Value, e.Key)
	}
	return out
}

func (p Pairs) Keys() []string {
	keys := make([]string, len(p))
	for i, e := range p {
		keys[i] = e.Key
	}
	return keys
}

// MarshalIndent 按 4 空格缩进输出 JSON 对象
func (p Pairs) MarshalIndent() ([]byte, error) {
	if len(p) == 0 {
		return []byte("{}"), nil
	}
	var b strings.Builder
	b.WriteString("{\n")
	for i, e := range p {
		k, err := marshalString(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := marshalString(e.Value)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&b, "    %s: %s", k, v)
		if i < len(p)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return []byte(b.String()), nil
}

// marshalString 编码 JSON 字符串，不转义 < > &
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
