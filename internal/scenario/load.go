package scenario

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed scenarios/*.yaml prompts/*.md
var assetFS embed.FS

// Loader reads scenario definitions from a filesystem. The zero-value
// default uses the embedded built-in scenarios; WithDir overrides it with
// a directory on disk, which lets users author their own scenarios.
type Loader struct {
	fsys fs.FS
}

// NewLoader returns a loader over the built-in scenarios.
func NewLoader() *Loader {
	return &Loader{fsys: assetFS}
}

// WithDir returns a loader reading scenarios from dir instead of the
// built-ins. Files are expected directly in dir as <name>.yaml.
func WithDir(dir string) *Loader {
	return &Loader{fsys: dirFS{os.DirFS(dir)}}
}

// dirFS maps the embedded "scenarios/" prefix onto a flat user directory
// while persona prompts keep coming from the built-ins.
type dirFS struct{ user fs.FS }

func (d dirFS) Open(name string) (fs.File, error) {
	if rest, ok := strings.CutPrefix(name, "scenarios/"); ok {
		return d.user.Open(rest)
	}
	return assetFS.Open(name)
}

// List returns the available scenario names, sorted.
func (l *Loader) List() ([]string, error) {
	var (
		entries []string
		err     error
	)
	if d, ok := l.fsys.(dirFS); ok {
		entries, err = fs.Glob(d.user, "*.yaml")
	} else {
		entries, err = fs.Glob(l.fsys, "scenarios/*.yaml")
	}
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(path.Base(e), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// Load reads, defaults, and validates one scenario by name.
func (l *Loader) Load(name string) (*Config, error) {
	raw, err := fs.ReadFile(l.fsys, "scenarios/"+name+".yaml")
	if err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", name, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", name, err)
	}
	if cfg.Name != name {
		return nil, fmt.Errorf("scenario file %s.yaml declares name %q", name, cfg.Name)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
