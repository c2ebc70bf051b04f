package transcript

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// 文件名里已有的日期后缀: "-03-15" 及其后的所有字符
var dateSuffixRe = regexp.MustCompile(`-\d{2}-\d{2}.*$`)

func stripExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// FormatName 去掉扩展名和旧日期后缀，追加当天的 -MM-DD
func FormatName(filename string, now time.Time) string {
	base := dateSuffixRe.ReplaceAllString(stripExt(filename), "")
	return base + now.Format("-01-02")
}

// BaseName 去重用的键：去掉扩展名后从右侧按 "-" 最多切两次，取最左段
func BaseName(name string) string {
	base := stripExt(name)
	for i := 0; i < 2; i++ {
		idx := strings.LastIndex(base, "-")
		if idx < 0 {
			break
		}
		base = base[:idx]
	}
	return base
}

// TimestampName 备份模式的文件名: <base>_<YYYYMMDD_HHMMSS><ext>
func TimestampName(filename string, now time.Time, ext string) string {
	return stripExt(filename) + "_" + now.Format("20060102_150405") + ext
}
