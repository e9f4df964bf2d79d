package driver

import (
	"context"
	"fmt"
	"path/filepath"

	"lust/internal/project"
	"lust/internal/source"
)

// ProjectResult bundles a package read with its manifest.
type ProjectResult struct {
	Manifest project.Manifest
	RootDir  string
	FileSet  *source.FileSet
	Interner *source.Interner
	Files    []ReadResult
}

// ReadProject locates the lust.toml at or above startDir and reads every
// source file under the manifest's root.
func ReadProject(ctx context.Context, startDir string, maxDiagnostics, jobs int) (*ProjectResult, error) {
	manifestPath, ok, err := project.FindLustToml(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no lust.toml found at or above %q", startDir)
	}

	manifest, err := project.LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	rootDir, err := project.ResolveRoot(filepath.Dir(manifestPath), manifest.Root)
	if err != nil {
		return nil, err
	}

	fileSet, interner, files, err := ReadDir(ctx, rootDir, manifest.Extension, maxDiagnostics, jobs)
	if err != nil {
		return nil, err
	}

	return &ProjectResult{
		Manifest: manifest,
		RootDir:  rootDir,
		FileSet:  fileSet,
		Interner: interner,
		Files:    files,
	}, nil
}
