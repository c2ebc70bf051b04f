package archive

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/liao/chat-archiver/internal/config"
	"github.com/liao/chat-archiver/internal/transcript"
)

// Backup 把 source 下的 .txt 记录转成带时间戳的 txt 和 html，写完后删除源文件
func Backup(ctx context.Context, fs afero.Fs, cfg config.BackupConfig, clock Clock) (*Report, error) {
	if err := ensureDirs(fs, cfg.DestDir); err != nil {
		return nil, err
	}

	files, err := listFiles(fs, cfg.SourceDir, ".txt")
	if err != nil {
		return nil, err
	}

	// 同一次运行的所有文件共用一个时间戳
	now := clock.now()
	report := &Report{}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		src := join(cfg.SourceDir, f.Name())
		data, err := afero.ReadFile(fs, src)
		if err != nil {
			return report, fmt.Errorf("read %s: %w", src, err)
		}

		formatted := transcript.RenderPlainText(transcript.Split(string(data)))

		txtName := transcript.TimestampName(f.Name(), now, ".txt")
		htmlName := transcript.TimestampName(f.Name(), now, ".html")

		txtDst := join(cfg.DestDir, txtName)
		if err := afero.WriteFile(fs, txtDst, []byte(formatted), 0644); err != nil {
			return report, fmt.Errorf("write %s: %w", txtDst, err)
		}

		doc := transcript.RenderHTML(transcript.Split(formatted), transcript.HTMLOptions{
			Title:  stripExt(f.Name()),
			Escape: cfg.EscapeHTML,
		})
		htmlDst := join(cfg.DestDir, htmlName)
		if err := afero.WriteFile(fs, htmlDst, []byte(doc), 0644); err != nil {
			return report, fmt.Errorf("write %s: %w", htmlDst, err)
		}

		if err := fs.Remove(src); err != nil {
			return report, fmt.Errorf("remove %s: %w", src, err)
		}

		slog.Info("moved and formatted", "file", f.Name(), "txt", txtName, "html", htmlName)
		report.Processed = append(report.Processed, f.Name())
	}

	return report, nil
}
