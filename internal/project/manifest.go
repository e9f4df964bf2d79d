// Package project locates and parses lust.toml manifests. A manifest
// names the package and points at the directory holding its sources.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultExtension is the source file extension used when a manifest
// does not override it.
const DefaultExtension = ".lust"

// Manifest is a parsed lust.toml [package] section.
type Manifest struct {
	Name      string
	Root      string
	Extension string
}

var (
	// ErrPackageSectionMissing indicates that [package] is missing in a manifest.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrPackageRootMissing indicates that [package].root is missing in a manifest.
	ErrPackageRootMissing = errors.New("missing [package].root")
)

type manifestFile struct {
	Package struct {
		Name      string `toml:"name"`
		Root      string `toml:"root"`
		Extension string `toml:"extension"`
	} `toml:"package"`
}

// LoadManifest parses a lust.toml [package] section.
func LoadManifest(path string) (Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	root := strings.TrimSpace(cfg.Package.Root)
	if !meta.IsDefined("package", "root") || root == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageRootMissing)
	}
	ext := strings.TrimSpace(cfg.Package.Extension)
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return Manifest{
		Name:      strings.TrimSpace(cfg.Package.Name),
		Root:      root,
		Extension: ext,
	}, nil
}

// ResolveRoot resolves and validates the manifest's source root relative
// to the directory holding the manifest.
func ResolveRoot(manifestDir, root string) (string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return "", ErrPackageRootMissing
	}
	if filepath.IsAbs(root) {
		return "", fmt.Errorf("invalid [package].root %q: must be relative", root)
	}
	clean := filepath.Clean(filepath.FromSlash(root))
	if clean == "." {
		clean = ""
	}
	rootPath := filepath.Join(manifestDir, clean)
	if !pathWithin(manifestDir, rootPath) {
		return "", fmt.Errorf("invalid [package].root %q: escapes the package directory", root)
	}
	info, err := os.Stat(rootPath)
	if err != nil {
		return "", fmt.Errorf("invalid [package].root %q: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("invalid [package].root %q: not a directory", root)
	}
	return rootPath, nil
}

func pathWithin(base, candidate string) bool {
	rel, err := filepath.Rel(base, candidate)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
