// Package driver orchestrates reading many files: it walks directories,
// loads sources into a shared FileSet, and fans the per-file work out
// over a bounded worker group.
package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"lust/internal/diag"
	"lust/internal/lexer"
	"lust/internal/project"
	"lust/internal/reader"
	"lust/internal/sexpr"
	"lust/internal/source"
)

// ReadResult is the outcome of reading one file.
type ReadResult struct {
	Path   string              // path as it was discovered
	FileID source.FileID       // ID in the shared FileSet, 0 if loading failed
	Root   *sexpr.Root         // nil when lex faults aborted the read
	Errs   []reader.SyntaxError
	Bag    *diag.Bag
}

// listSourceFiles returns the sorted list of files under dir with the
// given extension.
func listSourceFiles(dir, ext string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Sorted for a deterministic result order.
	sort.Strings(files)
	return files, nil
}

// ReadDir reads every source file under dir in parallel. All files share
// one FileSet and one interner; per-file diagnostics land in per-file
// bags so workers never contend.
func ReadDir(ctx context.Context, dir, ext string, maxDiagnostics, jobs int) (*source.FileSet, *source.Interner, []ReadResult, error) {
	if ext == "" {
		ext = project.DefaultExtension
	}
	files, err := listSourceFiles(dir, ext)
	if err != nil {
		return nil, nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	interner := source.NewInterner()
	if len(files) == 0 {
		return fileSet, interner, nil, nil
	}
	results, err := readPaths(ctx, fileSet, interner, files, maxDiagnostics, jobs)
	return fileSet, interner, results, err
}

// ReadFiles reads an explicit list of files in parallel.
func ReadFiles(ctx context.Context, paths []string, maxDiagnostics, jobs int) (*source.FileSet, *source.Interner, []ReadResult, error) {
	fileSet := source.NewFileSet()
	interner := source.NewInterner()
	if len(paths) == 0 {
		return fileSet, interner, nil, nil
	}
	results, err := readPaths(ctx, fileSet, interner, paths, maxDiagnostics, jobs)
	return fileSet, interner, results, err
}

func readPaths(ctx context.Context, fileSet *source.FileSet, interner *source.Interner, files []string, maxDiagnostics, jobs int) ([]ReadResult, error) {
	// Loading happens up front: FileSet.Add is not goroutine-safe, and
	// the workers only need read access afterwards.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each worker writes only its own index; no mutex needed.
	results := make([]ReadResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+loadErr.Error()))
				results[i] = ReadResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			res := reader.ReadFile(file, interner, reader.Options{
				Reporter: (&lexer.ReporterAdapter{Bag: bag}).Reporter(),
			})

			results[i] = ReadResult{
				Path:   path,
				FileID: fileID,
				Root:   res.Root,
				Errs:   res.Errs,
				Bag:    bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
