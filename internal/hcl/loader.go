package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/todocsv/internal/config"
	"github.com/specialistvlad/todocsv/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	env map[string]string
}

// LoaderOption customizes a Loader.
type LoaderOption func(*Loader)

// WithEnv makes the given variables the only ones visible as `env` inside
// settings files.
func WithEnv(env map[string]string) LoaderOption {
	return func(l *Loader) {
		l.env = env
	}
}

// NewLoader creates a new HCL settings loader reading the process
// environment.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{env: config.ParseEnviron(os.Environ())}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// fileRoot is the top-level layout of a settings file.
type fileRoot struct {
	Debug      *bool            `hcl:"debug,optional"`
	APIService *apiServiceBlock `hcl:"api_service,block"`
	Log        *logBlock        `hcl:"log,block"`
}

// apiServiceBlock is the 'api_service' block.
type apiServiceBlock struct {
	URL           *string `hcl:"url,optional"`
	Path          *string `hcl:"path,optional"`
	OverrideFiles *bool   `hcl:"override_files,optional"`
	Timeout       *string `hcl:"timeout,optional"`
}

// logBlock is the 'log' block.
type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, path string) (*config.Overrides, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, l.evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	o, err := translate(&root)
	if err != nil {
		return nil, fmt.Errorf("invalid HCL file %s: %w", path, err)
	}

	logger.Debug("HCL loading complete.", "path", path)
	return o, nil
}

// evalContext exposes the environment as the `env` map and a few string
// helpers from the cty standard library.
func (l *Loader) evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(l.env))
	for k, v := range l.env {
		vars[k] = cty.StringVal(v)
	}

	env := cty.MapValEmpty(cty.String)
	if len(vars) > 0 {
		env = cty.MapVal(vars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
		Functions: map[string]function.Function{
			"lookup":    stdlib.LookupFunc,
			"lower":     stdlib.LowerFunc,
			"upper":     stdlib.UpperFunc,
			"trimspace": stdlib.TrimSpaceFunc,
			"format":    stdlib.FormatFunc,
		},
	}
}

// translate converts the HCL-specific file layout into the agnostic
// overrides.
func translate(root *fileRoot) (*config.Overrides, error) {
	o := &config.Overrides{Debug: root.Debug}
	if s := root.APIService; s != nil {
		o.URL = s.URL
		o.StoragePath = s.Path
		o.OverrideFiles = s.OverrideFiles
		if s.Timeout != nil {
			d, err := config.ParseDuration(*s.Timeout)
			if err != nil {
				return nil, fmt.Errorf("api_service.timeout: %w", err)
			}
			o.Timeout = &d
		}
	}
	if lg := root.Log; lg != nil {
		o.LogLevel = lg.Level
		o.LogFormat = lg.Format
	}
	return o, nil
}
