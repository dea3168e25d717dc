package site

import (
	"bytes"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"path"

	"github.com/sgtmarmite/wtfcesko/pkg/cache"
	"github.com/sgtmarmite/wtfcesko/pkg/errors"
	"github.com/sgtmarmite/wtfcesko/pkg/registry"
	"github.com/sgtmarmite/wtfcesko/pkg/style"
)

//go:embed web/index.html.tmpl web/style.css web/mount.js
var web embed.FS

// AssetDir is the output subdirectory holding bundled assets.
const AssetDir = "assets"

// hashLen is the number of hex digits of the content hash in asset names.
const hashLen = 10

// Asset is a bundled file written under AssetDir.
type Asset struct {
	Name string // File name including the content hash, e.g. app-3f2a9c01be.js
	Data []byte
}

// Path returns the asset's path relative to the output directory.
func (a Asset) Path() string { return path.Join(AssetDir, a.Name) }

func hashedName(prefix, ext string, data []byte) string {
	sum := sha256.Sum256(data)
	return prefix + "-" + hex.EncodeToString(sum[:])[:hashLen] + ext
}

// chartTable is the object assigned to window.WTF_CHARTS.
type chartTable struct {
	Breakpoint int                       `json:"breakpoint"`
	Desktop    map[string]registry.Mount `json:"desktop"`
	Mobile     map[string]registry.Mount `json:"mobile"`
}

// ContentHash digests every render input that does not come from Options:
// the chart tables for both device classes and the embedded page template,
// stylesheet and mount script. Two registries with equal hashes render
// identical pages for equal Options.
func ContentHash(reg *registry.Registry) (string, error) {
	blobs := make(map[string][]byte)
	for _, d := range style.Devices {
		data, err := json.Marshal(reg.MountAll(d))
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "encode %s chart table", d)
		}
		blobs["charts/"+d.String()] = data
	}
	err := fs.WalkDir(web, "web", func(p string, e fs.DirEntry, err error) error {
		if err != nil || e.IsDir() {
			return err
		}
		data, err := web.ReadFile(p)
		if err != nil {
			return err
		}
		blobs[p] = data
		return nil
	})
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "read embedded web files")
	}
	return cache.HashNamed(blobs), nil
}

// Bundle serializes every chart configuration for both device classes and
// appends the mount script. breakpoint is the widest viewport, in CSS
// pixels, that uses the mobile table.
func Bundle(reg *registry.Registry, breakpoint int) (Asset, error) {
	if breakpoint <= 0 {
		breakpoint = style.MobileBreakpoint
	}
	table := chartTable{
		Breakpoint: breakpoint,
		Desktop:    reg.MountAll(style.Desktop),
		Mobile:     reg.MountAll(style.Mobile),
	}
	payload, err := json.Marshal(table)
	if err != nil {
		return Asset{}, errors.Wrap(errors.ErrCodeInternal, err, "encode chart table")
	}
	mount, err := web.ReadFile("web/mount.js")
	if err != nil {
		return Asset{}, errors.Wrap(errors.ErrCodeInternal, err, "read mount script")
	}

	var buf bytes.Buffer
	buf.WriteString("window.WTF_CHARTS=")
	buf.Write(payload)
	buf.WriteString(";\n")
	buf.Write(mount)

	data := buf.Bytes()
	return Asset{Name: hashedName("app", ".js", data), Data: data}, nil
}

// Stylesheet returns the page stylesheet.
func Stylesheet() (Asset, error) {
	data, err := web.ReadFile("web/style.css")
	if err != nil {
		return Asset{}, errors.Wrap(errors.ErrCodeInternal, err, "read stylesheet")
	}
	return Asset{Name: hashedName("style", ".css", data), Data: data}, nil
}
