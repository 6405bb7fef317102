package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/plum-lang/plum/pkg/diag"
	"github.com/plum-lang/plum/pkg/eval"
	"github.com/plum-lang/plum/pkg/eval/vals"
	"github.com/plum-lang/plum/pkg/parse"
	"github.com/plum-lang/plum/pkg/store/storedefs"
	"github.com/plum-lang/plum/pkg/stream"
	"github.com/plum-lang/plum/pkg/sys"
)

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	Prompt  string
	ShowAST bool
	// Store receives each line read. It may be nil.
	Store storedefs.History
	// HistorySize is the number of lines kept in Store. A non-positive value
	// keeps all lines.
	HistorySize int
}

const quitCommand = "quit"

// Interact runs an interactive session, reading lines from fds[0] until EOF or
// the quit command. All lines are evaluated in the same global scope.
func Interact(fds [3]*os.File, ev *eval.Evaler, cfg *InteractConfig) {
	in := bufio.NewReader(fds[0])
	width := -1
	if sys.IsATTY(fds[1]) {
		_, width = sys.WinSize(fds[1])
	}
	logger.Infof("interactive session started, modules %v", ev.Modules())
	defer logger.Info("interactive session ended")

	for cmdNum := 1; ; cmdNum++ {
		fmt.Fprint(fds[2], cfg.Prompt)
		line, err := in.ReadString('\n')
		if err != nil && err != io.EOF {
			fmt.Fprintln(fds[2], "Read error:", err)
			return
		}
		eof := err == io.EOF
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		if strings.TrimSpace(line) == quitCommand {
			return
		}
		if strings.TrimSpace(line) != "" {
			addHistory(fds[2], cfg, line)
			src := parse.Source{Name: fmt.Sprintf("[tty %v]", cmdNum), Code: line}
			evalLine(fds, ev, cfg.ShowAST, src, width)
		}
		if eof {
			fmt.Fprintln(fds[2])
			return
		}
	}
}

func evalLine(fds [3]*os.File, ev *eval.Evaler, showAST bool, src parse.Source, width int) {
	if showAST {
		tree, err := parse.Parse(src)
		parse.PPrintTree(fds[1], tree)
		if err != nil {
			diag.ShowError(fds[2], err)
		}
		return
	}
	v, err := ev.Eval(src)
	if s, ok := v.(*stream.Stream); ok && !assigns(src) {
		values, drainErr := stream.Collect(s)
		if drainErr != nil {
			diag.ShowError(fds[2], drainErr)
			return
		}
		if values == nil {
			values = []any{}
		}
		v = values
	}
	if v != nil {
		fmt.Fprintln(fds[1], truncate(vals.Repr(v), width))
	}
	if err != nil {
		diag.ShowError(fds[2], err)
	}
}

// Reports whether the last statement of src is an assignment. A stream bound
// to a variable is left for its consumer.
func assigns(src parse.Source) bool {
	tree, _ := parse.Parse(src)
	if len(tree.Nodes) == 0 {
		return false
	}
	_, ok := tree.Nodes[len(tree.Nodes)-1].(*parse.Assign)
	return ok
}

func addHistory(stderr io.Writer, cfg *InteractConfig, line string) {
	if cfg.Store == nil {
		return
	}
	_, err := cfg.Store.AddLine(line)
	if err == nil && cfg.HistorySize > 0 {
		var n int
		n, err = cfg.Store.Trim(cfg.HistorySize)
		if n > 0 {
			logger.Debugf("trimmed %d history entries", n)
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, "Warning: cannot save history:", err)
	}
}

// Truncates s to fit in width columns. A non-positive width means no limit.
func truncate(s string, width int) string {
	if width <= 0 || utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-1]) + "…"
}
