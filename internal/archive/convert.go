package archive

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/afero"
)

// convertExport 把 HTML 导出转成 Markdown，一级标题优先用文档的 <title>
func convertExport(fs afero.Fs, src, dst, fallbackTitle string) error {
	data, err := afero.ReadFile(fs, src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse HTML %s: %w", src, err)
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = fallbackTitle
	}

	body, err := doc.Find("body").Html()
	if err != nil {
		return fmt.Errorf("extract body %s: %w", src, err)
	}

	converter := md.NewConverter("", true, nil)
	text, err := converter.ConvertString(body)
	if err != nil {
		return fmt.Errorf("convert %s: %w", src, err)
	}

	out := fmt.Sprintf("# %s\n\n%s\n", title, strings.TrimSpace(text))
	if err := afero.WriteFile(fs, dst, []byte(out), 0644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}
