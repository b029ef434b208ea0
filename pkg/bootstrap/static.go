package bootstrap

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tagalong/ramp/pkg/structs"
)

// StaticStage gathers static assets from the configured source trees into
// the collect root, overwriting any previously collected file without
// confirmation. Later sources win on path collisions.
type StaticStage struct {
	sources []string
	root    string
}

func NewStaticStage(sources []string, root string) *StaticStage {
	return &StaticStage{sources: sources, root: root}
}

func (s *StaticStage) Kind() structs.Stage {
	return structs.StageStatic
}

func (s *StaticStage) Run(ctx context.Context) error {
	if len(s.sources) == 0 {
		return nil
	}
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return err
	}
	for _, src := range s.sources {
		if err := s.collect(ctx, src); err != nil {
			return err
		}
	}
	return nil
}

func (s *StaticStage) collect(ctx context.Context, src string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		return copyFile(path, filepath.Join(s.root, rel))
	})
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst) // truncates: overwrite is intended
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
