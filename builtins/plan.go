package builtins

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Options configures a single touch run.
type Options struct {
	Prefix string
	Count  int
	// Dir is the directory the files are created in. Empty means the
	// current working directory.
	Dir    string
	DryRun bool
}

type Result struct {
	Name   string
	Path   string
	Action Action
}

// Plan is the validated, ordered list of files a run will touch. Building
// a plan has no side effects.
type Plan struct {
	opts   Options
	names  []string
	logger *zap.Logger
	now    func() time.Time
}

// NewPlan validates opts and generates the filenames. A nil logger
// discards log output.
func NewPlan(opts Options, logger *zap.Logger) (*Plan, error) {
	names, err := Filenames(opts.Prefix, opts.Count)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Plan{
		opts:   opts,
		names:  names,
		logger: logger,
		now:    time.Now,
	}, nil
}

// path places name under Dir without cleaning name itself, so the file
// touched is always the one announced.
func (p *Plan) path(name string) string {
	if p.opts.Dir == "" {
		return name
	}
	dir := filepath.Clean(p.opts.Dir)
	if !os.IsPathSeparator(dir[len(dir)-1]) {
		dir += string(filepath.Separator)
	}
	return dir + name
}

// Names returns a copy of the planned filenames in creation order.
func (p *Plan) Names() []string {
	names := make([]string, len(p.names))
	copy(names, p.names)
	return names
}

// Execute announces each file on w and then touches it, in order. It stops
// at the first file that cannot be touched and returns the results
// collected up to that point together with the error.
func (p *Plan) Execute(w io.Writer) ([]Result, error) {
	results := make([]Result, 0, len(p.names))
	for _, name := range p.names {
		path := p.path(name)

		if p.opts.DryRun {
			_, _ = fmt.Fprintln(w, "Would create file:", name)
			results = append(results, Result{Name: name, Path: path, Action: ActionSkipped})
			continue
		}

		_, _ = fmt.Fprintln(w, "Creating file:", name)
		action, err := Touch(path, p.now())
		if err != nil {
			p.logger.Error("touch failed", zap.String("path", path), zap.Error(err))
			return results, err
		}
		p.logger.Debug("touched file", zap.String("path", path), zap.String("action", string(action)))
		results = append(results, Result{Name: name, Path: path, Action: action})
	}
	return results, nil
}
