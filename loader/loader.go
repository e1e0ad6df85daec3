// Package loader locates introspection documents on disk and builds fully
// attached repositories from them. All I/O for the pipeline lives here: the
// core parser and repository only ever see bytes already in memory.
package loader

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/viant/afs"

	"github.com/jward/girkit"
	"github.com/jward/girkit/internal/girxml"
	"github.com/jward/girkit/internal/model"
)

// defaultSearchPaths are the conventional system locations for .gir files.
var defaultSearchPaths = []string{
	"/usr/share/gir-1.0",
	"/usr/local/share/gir-1.0",
}

// Loader finds Namespace-Version.gir documents on its search paths, parses
// them, follows include edges, and attaches the resulting namespaces to a
// repository. Documents are fetched through an afs storage service, so a
// search path can be any URL scheme the service understands, not just a
// local directory.
type Loader struct {
	fs          afs.Service
	searchPaths []string
}

// Option configures a Loader.
type Option func(*Loader)

// WithSearchPath prepends paths consulted before the system defaults.
func WithSearchPath(paths ...string) Option {
	return func(l *Loader) {
		l.searchPaths = append(append([]string{}, paths...), l.searchPaths...)
	}
}

// WithService replaces the storage service used to locate and read
// documents.
func WithService(fs afs.Service) Option {
	return func(l *Loader) {
		l.fs = fs
	}
}

// WithConfig applies a file-based configuration's search paths.
func WithConfig(cfg *Config) Option {
	return func(l *Loader) {
		l.searchPaths = append(append([]string{}, cfg.SearchPaths...), l.searchPaths...)
	}
}

// New creates a Loader with the system search paths and a default storage
// service.
func New(opts ...Option) *Loader {
	l := &Loader{
		fs:          afs.New(),
		searchPaths: append([]string{}, defaultSearchPaths...),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load builds a repository rooted at one namespace: the named document plus
// the transitive closure of its includes, each loaded exactly once.
func (l *Loader) Load(ctx context.Context, name, version string) (*girkit.Repository, error) {
	return l.LoadAll(ctx, Target{Name: name, Version: version})
}

// LoadAll builds one repository covering several root namespaces and the
// union of their include closures. Each round of the closure is fetched and
// parsed by a worker pool, then attached serially, so the repository's
// construction stays single-writer.
func (l *Loader) LoadAll(ctx context.Context, targets ...Target) (*girkit.Repository, error) {
	repo := girkit.NewRepository()
	seen := make(map[string]bool)

	frontier := make([]Target, 0, len(targets))
	for _, t := range targets {
		if !seen[t.Name] {
			seen[t.Name] = true
			frontier = append(frontier, t)
		}
	}

	for len(frontier) > 0 {
		namespaces, err := l.loadBatch(ctx, frontier)
		if err != nil {
			return nil, err
		}

		var next []Target
		for _, ns := range namespaces {
			repo.Attach(ns)
			for _, inc := range ns.Includes {
				if !seen[inc.Name] {
					seen[inc.Name] = true
					next = append(next, Target{Name: inc.Name, Version: inc.Version})
				}
			}
		}
		frontier = next
	}
	return repo, nil
}

// loadBatch fetches and parses one frontier of targets in parallel,
// preserving target order in the result.
func (l *Loader) loadBatch(ctx context.Context, targets []Target) ([]*model.Namespace, error) {
	numWorkers := min(runtime.NumCPU(), len(targets))
	if numWorkers < 1 {
		numWorkers = 1
	}

	type job struct {
		idx    int
		target Target
	}
	jobs := make(chan job, len(targets))
	for i, t := range targets {
		jobs <- job{idx: i, target: t}
	}
	close(jobs)

	namespaces := make([]*model.Namespace, len(targets))
	errs := make([]error, len(targets))

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				ns, err := l.loadOne(ctx, j.target)
				namespaces[j.idx] = ns
				errs[j.idx] = err
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return namespaces, nil
}

func (l *Loader) loadOne(ctx context.Context, t Target) (*model.Namespace, error) {
	data, err := l.fetch(ctx, t)
	if err != nil {
		return nil, err
	}
	doc, err := girxml.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", documentName(t), err)
	}
	return model.NormalizeDocument(doc), nil
}

// fetch tries each search path in order and returns the first hit.
func (l *Loader) fetch(ctx context.Context, t Target) ([]byte, error) {
	name := documentName(t)
	for _, p := range l.searchPaths {
		URL := strings.TrimSuffix(p, "/") + "/" + name
		ok, err := l.fs.Exists(ctx, URL)
		if err != nil || !ok {
			continue
		}
		data, err := l.fs.DownloadWithURL(ctx, URL)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("load %s: not found on search paths %v", name, l.searchPaths)
}

func documentName(t Target) string {
	if t.Version == "" {
		return t.Name + ".gir"
	}
	return t.Name + "-" + t.Version + ".gir"
}
