package catalog

import (
	"archive/zip"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	ModelListFile       = "output_model_list.json"
	ReversedListFile    = "reversed_model_list.json"
	ButtonsFile         = "models_buttons.html"
	DescriptionsFile    = "output_model_list_with_descriptions.json"
	SelectionScriptFile = "model_event_listeners_corrected.js"
	TooltipScriptFile   = "model_event_listeners_with_descriptions_corrected.js"
	BundleFile          = "output_files.zip"
)

// Generate 生成全部产物并打包，返回写入的文件路径
func Generate(fs afero.Fs, catalogPath, outDir string) ([]string, error) {
	c, err := Load(fs, catalogPath)
	if err != nil {
		return nil, err
	}
	if err := fs.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	names := c.NameMap()
	modelList, err := names.MarshalIndent()
	if err != nil {
		return nil, fmt.Errorf("marshal model list: %w", err)
	}
	reversed, err := names.Reverse().MarshalIndent()
	if err != nil {
		return nil, fmt.Errorf("marshal reversed list: %w", err)
	}
	descriptions, err := c.DescriptionMap().MarshalIndent()
	if err != nil {
		return nil, fmt.Errorf("marshal descriptions: %w", err)
	}

	ids := names.Keys()
	artifacts := []struct {
		name string
		data []byte
	}{
		{ModelListFile, modelList},
		{ReversedListFile, reversed},
		{ButtonsFile, []byte(Buttons(names))},
		{DescriptionsFile, descriptions},
		{SelectionScriptFile, []byte(SelectionListeners(ids))},
		{TooltipScriptFile, []byte(TooltipListeners(ids))},
	}

	var written []string
	for _, a := range artifacts {
		path := filepath.Join(outDir, a.name)
		if err := afero.WriteFile(fs, path, a.data, 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	bundle := filepath.Join(outDir, BundleFile)
	if err := writeZip(fs, bundle, written); err != nil {
		return written, err
	}
	slog.Info("catalog artifacts generated", "models", len(c.Data), "bundle", bundle)
	return append(written, bundle), nil
}

// writeZip 把文件按相对 zip 所在目录的路径打包
func writeZip(fs afero.Fs, zipPath string, files []string) error {
	f, err := fs.Create(zipPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", zipPath, err)
	}

	zw := zip.NewWriter(f)
	if err := addZipEntries(fs, zw, filepath.Dir(zipPath), files); err != nil {
		f.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close zip: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", zipPath, err)
	}
	return nil
}

func addZipEntries(fs afero.Fs, zw *zip.Writer, base string, files []string) error {
	for _, path := range files {
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return fmt.Errorf("relative path %s: %w", path, err)
		}
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("add %s to zip: %w", rel, err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write %s to zip: %w", rel, err)
		}
	}
	return nil
}
