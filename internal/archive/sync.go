package archive

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/liao/chat-archiver/internal/config"
	"github.com/liao/chat-archiver/internal/transcript"
)

const (
	txtSubdir      = "txt"
	markdownSubdir = "markdown"
	htmlSubdir     = "html"

	// HTML 导出转换出的 Markdown 后缀
	convertedExt = ".html.md"
)

type syncDirs struct {
	txt, markdown, html string
}

func dirsFor(cfg config.SyncConfig) syncDirs {
	return syncDirs{
		txt:      join(cfg.DestDir, txtSubdir),
		markdown: join(cfg.DestDir, markdownSubdir),
		html:     join(cfg.DestDir, htmlSubdir),
	}
}

// Sync 处理 .txt 记录，然后搬运 HTML 导出文件
func Sync(ctx context.Context, fs afero.Fs, cfg config.SyncConfig, clock Clock) (*Report, error) {
	d := dirsFor(cfg)
	if err := ensureDirs(fs, d.txt, d.markdown, d.html); err != nil {
		return nil, err
	}

	report, err := syncTranscripts(ctx, fs, cfg, d, clock)
	if err != nil {
		return report, err
	}

	moved, err := MoveHTML(ctx, fs, cfg, clock)
	if moved != nil {
		report.Processed = append(report.Processed, moved.Processed...)
		report.Skipped = append(report.Skipped, moved.Skipped...)
	}
	return report, err
}

func syncTranscripts(ctx context.Context, fs afero.Fs, cfg config.SyncConfig, d syncDirs, clock Clock) (*Report, error) {
	files, err := listFiles(fs, cfg.SourceDir, ".txt")
	if err != nil {
		return nil, err
	}

	now := clock.now()
	report := &Report{}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		src := join(cfg.SourceDir, f.Name())
		name := transcript.FormatName(f.Name(), now)

		// 原始 txt 不做修改直接复制
		if err := copyFile(fs, src, join(d.txt, name+".txt")); err != nil {
			return report, err
		}

		data, err := afero.ReadFile(fs, src)
		if err != nil {
			return report, fmt.Errorf("read %s: %w", src, err)
		}
		md := transcript.RenderMarkdown(transcript.Split(string(data)), name)
		mdDst := join(d.markdown, name+".md")
		if err := afero.WriteFile(fs, mdDst, []byte(md), 0644); err != nil {
			return report, fmt.Errorf("write %s: %w", mdDst, err)
		}

		if err := fs.Remove(src); err != nil {
			return report, fmt.Errorf("remove %s: %w", src, err)
		}

		slog.Info("processed transcript", "file", f.Name(), "name", name)
		report.Processed = append(report.Processed, f.Name())
	}
	return report, nil
}

// MoveHTML 把 HTML 导出复制到 html/，按去掉日期后的基础名去重；源文件保留
func MoveHTML(ctx context.Context, fs afero.Fs, cfg config.SyncConfig, clock Clock) (*Report, error) {
	d := dirsFor(cfg)
	if err := ensureDirs(fs, d.html); err != nil {
		return nil, err
	}

	existingFiles, err := listFiles(fs, d.html, ".html")
	if err != nil {
		return nil, err
	}
	existing := make(map[string]bool, len(existingFiles))
	for _, f := range existingFiles {
		existing[transcript.BaseName(f.Name())] = true
	}

	files, err := listFiles(fs, cfg.HTMLSourceDir, ".html")
	if err != nil {
		return nil, err
	}

	now := clock.now()
	report := &Report{}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		name := transcript.FormatName(f.Name(), now)
		key := transcript.BaseName(name)
		if existing[key] {
			slog.Info("skipped html export, already in destination", "file", f.Name())
			report.Skipped = append(report.Skipped, f.Name())
			continue
		}

		src := join(cfg.HTMLSourceDir, f.Name())
		if err := copyFile(fs, src, join(d.html, name+".html")); err != nil {
			return report, err
		}

		if cfg.ConvertHTML {
			if err := ensureDirs(fs, d.markdown); err != nil {
				return report, err
			}
			// 与 txt 记录的 <name>.md 分开命名，避免同名覆盖
			if err := convertExport(fs, src, join(d.markdown, name+convertedExt), name); err != nil {
				return report, err
			}
		}

		existing[key] = true
		slog.Info("moved html export", "file", f.Name(), "name", name)
		report.Processed = append(report.Processed, f.Name())
	}
	return report, nil
}
