package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"

	"github.com/dmitrymomot/validkit/pkg/logger"
)

// TranslationAdapter loads translations from a source.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from an in-memory map.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single translation file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates an adapter for path. A nil parser is chosen from
// the file extension. Returns nil if path is empty or the format is unknown.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if path == "" {
		return nil
	}
	if parser == nil {
		parser = NewParserForFile(path)
	}
	if parser == nil {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parseContent(ctx, a.parser, a.path, content)
}

// AdapterOption configures directory based adapters.
type AdapterOption func(*dirLoader)

// WithAdapterLogger receives warnings about files that were skipped.
func WithAdapterLogger(l *slog.Logger) AdapterOption {
	return func(d *dirLoader) {
		if l != nil {
			d.logger = l
		}
	}
}

// DirectoryAdapter loads every supported file of a directory and merges
// them. Files that fail to parse are skipped with a warning.
type DirectoryAdapter struct {
	path   string
	loader dirLoader
}

// NewDirectoryAdapter returns nil if parser is nil or path is empty.
func NewDirectoryAdapter(parser Parser, path string, opts ...AdapterOption) *DirectoryAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &DirectoryAdapter{path: path, loader: newDirLoader(parser, opts)}
}

func (a *DirectoryAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	info, err := os.Stat(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrFailedToAccessDirectory, a.path)
	}
	return a.loader.load(ctx, os.DirFS(a.path), ".")
}

// EmbeddedFsAdapter loads translation files from a directory of an fs.FS,
// typically an embed.FS compiled into the binary.
type EmbeddedFsAdapter struct {
	fsys   fs.FS
	dir    string
	loader dirLoader
}

// NewEmbeddedFsAdapter returns nil if parser or fsys is nil, or dir is empty.
func NewEmbeddedFsAdapter(parser Parser, fsys fs.FS, dir string, opts ...AdapterOption) *EmbeddedFsAdapter {
	if parser == nil || fsys == nil || dir == "" {
		return nil
	}
	return &EmbeddedFsAdapter{fsys: fsys, dir: dir, loader: newDirLoader(parser, opts)}
}

func (a *EmbeddedFsAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	return a.loader.load(ctx, a.fsys, a.dir)
}

type dirLoader struct {
	parser Parser
	logger *slog.Logger
}

func newDirLoader(parser Parser, opts []AdapterOption) dirLoader {
	d := dirLoader{parser: parser, logger: logger.Discard()}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	return d
}

func (d dirLoader) load(ctx context.Context, fsys fs.FS, dir string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !d.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(dir, entry.Name())
		content, err := fs.ReadFile(fsys, name)
		if err == nil {
			var translations map[string]map[string]any
			translations, err = parseContent(ctx, d.parser, name, content)
			if err == nil {
				merge(all, translations)
				loaded++
				continue
			}
		}
		d.logger.WarnContext(ctx, "skipping translation file",
			logger.Component("i18n"),
			logger.Path(name),
			logger.Error(err),
		)
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in directory %q", ErrNoTranslations, dir)
	}
	d.logger.DebugContext(ctx, "translation files loaded",
		logger.Component("i18n"),
		logger.Path(dir),
		logger.Count(loaded),
	)
	return all, nil
}

func parseContent(ctx context.Context, parser Parser, name string, content []byte) (map[string]map[string]any, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: translation file %q is empty", ErrFailedToParseFile, name)
	}
	translations, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return translations, nil
}

// merge copies every language of src into dst. Nested maps are merged so
// several files may contribute to one section; on conflicting leaves the
// later file wins.
func merge(dst, src map[string]map[string]any) {
	for lang, translations := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(translations))
		}
		mergeInto(dst[lang], translations)
	}
}

func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		if sm, ok := toStringMap(v); ok {
			if dm, ok := toStringMap(dst[k]); ok {
				merged := make(map[string]any, len(dm)+len(sm))
				mergeInto(merged, dm)
				mergeInto(merged, sm)
				dst[k] = merged
				continue
			}
		}
		dst[k] = v
	}
}
