// Package rc loads the configuration file of Plum.
//
// The configuration file is a YAML document. All keys are optional:
//
//	prompt: "> "
//	history_db: ~/.local/state/plum/db.bolt
//	history_size: 1000
//	show_ast: false
//	modules: [functional, basic, io, vector, bits]
package rc

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/plum-lang/plum/pkg/logutil"
)

var logger = logutil.GetLogger("[rc] ")

// Config keeps the settings of Plum.
type Config struct {
	// Prompt is written before each line read by the REPL.
	Prompt string `yaml:"prompt"`
	// HistoryDB is the path of the history database. An empty value disables
	// history.
	HistoryDB string `yaml:"history_db"`
	// HistorySize is the number of history entries kept. A non-positive value
	// keeps all entries.
	HistorySize int `yaml:"history_size"`
	// ShowAST makes the REPL print the syntax tree of each line before
	// evaluating it.
	ShowAST bool `yaml:"show_ast"`
	// Modules lists the builtin modules to install, in order. A nil value
	// installs all of them.
	Modules []string `yaml:"modules"`
}

// Default returns the configuration used when there is no configuration file.
func Default() Config {
	return Config{
		Prompt:      "> ",
		HistoryDB:   defaultHistoryDB(),
		HistorySize: 1000,
	}
}

// Path returns the default path of the configuration file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "find config directory")
	}
	return filepath.Join(dir, "plum", "rc.yaml"), nil
}

func defaultHistoryDB() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "plum", "db.bolt")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "plum", "db.bolt")
}

// Load reads the configuration file at path on top of Default. A missing file
// is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debugf("no config file at %s", path)
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "read config file")
	}
	err = Decode(bytes.NewReader(content), &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "parse %s", path)
	}
	logger.Debugf("loaded config file %s", path)
	return cfg, nil
}

// Decode reads YAML from r into cfg. Fields absent from the document keep
// their values; unknown keys are errors.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if err == io.EOF {
		// Empty document.
		return nil
	}
	if err != nil {
		return err
	}
	cfg.HistoryDB = expandHome(cfg.HistoryDB)
	return nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
