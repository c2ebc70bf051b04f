// Package archive 把本地聊天记录整理成带日期的 txt / html / markdown 副本。
//
// 全部操作按文件顺序串行执行，任何一个文件失败都会中止整批；源文件只在
// 对应副本全部写入成功后才删除。
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// Report 一次运行的结果
type Report struct {
	Processed []string
	Skipped   []string
}

// Clock 可替换的时钟，测试时固定时间
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// listFiles 列出目录下指定扩展名的普通文件，按文件名排序
func listFiles(fs afero.Fs, dir, ext string) ([]os.FileInfo, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var files []os.FileInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		files = append(files, e)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })
	return files, nil
}

// copyFile 复制文件内容并保留权限位
func copyFile(fs afero.Fs, src, dst string) error {
	info, err := fs.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}
	data, err := afero.ReadFile(fs, src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}
	if err := afero.WriteFile(fs, dst, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	// WriteFile 只在新建文件时设置权限，覆盖已有文件时需要显式 Chmod
	if err := fs.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod %s: %w", dst, err)
	}
	if err := fs.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("chtimes %s: %w", dst, err)
	}
	return nil
}

func ensureDirs(fs afero.Fs, dirs ...string) error {
	for _, d := range dirs {
		if err := fs.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("create dir %s: %w", d, err)
		}
	}
	return nil
}

func stripExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func join(dir, name string) string {
	return filepath.Join(dir, name)
}
