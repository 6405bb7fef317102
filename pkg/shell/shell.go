// Package shell is the entry point for running Plum code from scripts, the -c
// flag and the interactive REPL.
package shell

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/plum-lang/plum/pkg/eval"
	"github.com/plum-lang/plum/pkg/logutil"
	"github.com/plum-lang/plum/pkg/mods"
	"github.com/plum-lang/plum/pkg/prog"
	"github.com/plum-lang/plum/pkg/rc"
	"github.com/plum-lang/plum/pkg/store"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram. It always runs.
type Program struct{}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	cfg := loadConfig(fds, f)

	modules, err := mods.Select(cfg.Modules, fds[1])
	if err != nil {
		return err
	}
	ev := eval.NewEvaler(modules...)
	defer ev.Close()

	if len(args) > 0 {
		exit := script(ev, fds, args, &scriptCfg{Cmd: f.CodeInArg, AST: f.AST})
		return prog.Exit(exit)
	}
	if f.CodeInArg {
		return prog.BadUsage("-c requires an argument")
	}

	icfg := &InteractConfig{Prompt: cfg.Prompt, ShowAST: cfg.ShowAST, HistorySize: cfg.HistorySize}
	if cfg.HistoryDB != "" {
		st, err := openStore(cfg.HistoryDB)
		if err != nil {
			fmt.Fprintln(fds[2], "Warning:", err)
			fmt.Fprintln(fds[2], "History will not be saved.")
		} else {
			defer st.Close()
			icfg.Store = st
		}
	}
	Interact(fds, ev, icfg)
	return nil
}

// Loads the config file, and applies overrides from the command-line flags.
func loadConfig(fds [3]*os.File, f *prog.Flags) rc.Config {
	cfg := rc.Default()
	if !f.NoRc {
		path := f.RC
		if path == "" {
			var err error
			path, err = rc.Path()
			if err != nil {
				fmt.Fprintln(fds[2], "Warning:", err)
			}
		}
		if path != "" {
			loaded, err := rc.Load(path)
			if err != nil {
				fmt.Fprintln(fds[2], "Warning:", err)
			} else {
				cfg = loaded
			}
		}
	}
	if f.DB != "" {
		cfg.HistoryDB = f.DB
	}
	if f.AST {
		cfg.ShowAST = true
	}
	return cfg
}

func openStore(path string) (store.DBStore, error) {
	err := os.MkdirAll(filepath.Dir(path), 0700)
	if err != nil {
		return nil, err
	}
	logger.Infof("opening history database %s", path)
	return store.NewStore(path)
}
