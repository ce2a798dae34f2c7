package cpattern

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/fsnotify.v1"
	"gopkg.in/yaml.v3"
)

// Registry holds a hot-reloadable collection of patterns layered on top of
// the builtin catalogue, adapted from the teacher's format-pattern registry:
// a directory of YAML files, loaded at startup and on fsnotify change
// events, replacing or extending builtins by pattern ID.
type Registry struct {
	mu       sync.RWMutex
	patterns map[string]Pattern
	order    []string
	dir      string
	watcher  *fsnotify.Watcher
	stopChan chan struct{}
	logger   *zap.Logger
}

// NewRegistry seeds a registry with the builtin catalogue.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{patterns: make(map[string]Pattern), logger: logger}
	for _, p := range BuiltinCatalogue() {
		r.register(p)
	}
	return r
}

func (r *Registry) register(p Pattern) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.patterns[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	r.patterns[p.ID] = p
}

// List returns the registry's patterns in catalogue order (custom additions
// appended after builtins in load order), ready for Tokenize.
func (r *Registry) List() []Pattern {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Pattern, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.patterns[id])
	}
	return out
}

// LoadDirectory loads every *.yaml/*.yml file in dir, compiling and
// ReDoS-auditing each pattern before it replaces or extends the catalogue.
// A directory that does not exist is not an error: there is simply nothing
// to layer on top of the builtins.
func (r *Registry) LoadDirectory(dir string) error {
	r.dir = dir

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cpattern: checking directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("cpattern: %s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("cpattern: reading directory %s: %w", dir, err)
	}

	var loadErrors []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		if err := r.LoadFile(filepath.Join(dir, name)); err != nil {
			loadErrors = append(loadErrors, fmt.Sprintf("%s: %v", name, err))
		}
	}

	if len(loadErrors) > 0 {
		return fmt.Errorf("cpattern: errors loading patterns: %s", strings.Join(loadErrors, "; "))
	}
	return nil
}

// LoadFile loads, compiles, audits, and registers a single pattern file.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	var p Pattern
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}
	if p.Priority == 0 {
		p.Priority = DefaultPriority(p.Kind)
	}
	if err := p.Compile(); err != nil {
		return fmt.Errorf("compiling: %w", err)
	}
	if err := RuntimeSmokeTest(&p); err != nil {
		return fmt.Errorf("smoke test: %w", err)
	}

	r.register(p)
	return nil
}

// Watch starts an fsnotify watch on the registry's loaded directory;
// changed or newly created YAML files are reloaded in place.
func (r *Registry) Watch() error {
	if r.dir == "" {
		return fmt.Errorf("cpattern: no directory configured for watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cpattern: creating watcher: %w", err)
	}
	r.watcher = watcher
	r.stopChan = make(chan struct{})

	go r.watchLoop()

	if err := watcher.Add(r.dir); err != nil {
		r.watcher.Close()
		return fmt.Errorf("cpattern: watching directory %s: %w", r.dir, err)
	}
	return nil
}

func (r *Registry) watchLoop() {
	for {
		select {
		case <-r.stopChan:
			return
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".yaml") && !strings.HasSuffix(event.Name, ".yml") {
				continue
			}
			switch {
			case event.Op&fsnotify.Write == fsnotify.Write, event.Op&fsnotify.Create == fsnotify.Create:
				if err := r.LoadFile(event.Name); err != nil {
					r.logger.Warn("cpattern: reload failed", zap.String("file", event.Name), zap.Error(err))
				}
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.logger.Warn("cpattern: watcher error", zap.Error(err))
		}
	}
}

// StopWatch stops the fsnotify watch, if any.
func (r *Registry) StopWatch() {
	if r.stopChan != nil {
		close(r.stopChan)
	}
	if r.watcher != nil {
		r.watcher.Close()
	}
}
