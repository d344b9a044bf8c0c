package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// FileName is looked up in the working directory when no path is given.
	FileName = ".golox.yml"
	// EnvVar names an explicit config file and wins over FileName.
	EnvVar = "GOLOX_CONFIG"

	DefaultPrompt = "> "
)

// Config holds the driver settings. Command-line flags are applied on top of
// whatever was loaded.
type Config struct {
	// Path is the file the settings came from, empty for defaults.
	Path string

	Prompt     string
	DumpTokens bool
	DumpAST    bool
	PrintRPN   bool
	DumpEnv    bool
}

type configFile struct {
	Prompt     *string `yaml:"prompt"`
	DumpTokens bool    `yaml:"dump_tokens"`
	DumpAST    bool    `yaml:"dump_ast"`
	PrintRPN   bool    `yaml:"print_rpn"`
	DumpEnv    bool    `yaml:"dump_env"`
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Path   string
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "config: %s is invalid:", e.Path)
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

func Default() *Config {
	return &Config{
		Prompt: DefaultPrompt,
	}
}

// Load parses the config file at path. The file must exist; an empty file
// yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	return decode(file, absPath)
}

// Discover loads the file named by $GOLOX_CONFIG, else FileName inside dir,
// else returns the defaults.
func Discover(dir string) (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func decode(r io.Reader, path string) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg := raw.toConfig(path)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (raw *configFile) toConfig(path string) *Config {
	cfg := Default()
	cfg.Path = path
	if raw.Prompt != nil {
		cfg.Prompt = *raw.Prompt
	}
	cfg.DumpTokens = raw.DumpTokens
	cfg.DumpAST = raw.DumpAST
	cfg.PrintRPN = raw.PrintRPN
	cfg.DumpEnv = raw.DumpEnv
	return cfg
}

func (c *Config) validate() error {
	errs := ValidationError{Path: c.Path}
	if strings.ContainsAny(c.Prompt, "\r\n") {
		errs.Issues = append(errs.Issues, "prompt must be a single line")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}
