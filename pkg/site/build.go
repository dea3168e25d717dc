package site

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/sgtmarmite/wtfcesko/pkg/errors"
	"github.com/sgtmarmite/wtfcesko/pkg/registry"
)

// IndexFile is the name of the rendered page.
const IndexFile = "index.html"

// Artifacts are the files of one site build.
type Artifacts struct {
	Index  []byte
	Script Asset
	Style  Asset
}

// Files maps output-relative paths to file contents.
func (a *Artifacts) Files() map[string][]byte {
	return map[string][]byte{
		IndexFile:       a.Index,
		a.Script.Path(): a.Script.Data,
		a.Style.Path():  a.Style.Data,
	}
}

// Build bundles the assets and renders the page for reg.
func Build(reg *registry.Registry, opts Options) (*Artifacts, error) {
	script, err := Bundle(reg, opts.Breakpoint)
	if err != nil {
		return nil, err
	}
	css, err := Stylesheet()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := Render(&buf, NewPage(reg, opts, script, css)); err != nil {
		return nil, err
	}
	return &Artifacts{Index: buf.Bytes(), Script: script, Style: css}, nil
}

// Write writes a into dir. Assets from earlier builds are removed first so
// stale hashed files do not accumulate.
func Write(dir string, a *Artifacts) error {
	if err := errors.ValidateOutputDir(dir); err != nil {
		return err
	}
	assets := filepath.Join(dir, AssetDir)
	if err := os.RemoveAll(assets); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "clean %s", assets)
	}
	if err := os.MkdirAll(assets, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", assets)
	}
	for name, data := range a.Files() {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.WriteFile(p, data, 0644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", p)
		}
	}
	return nil
}
