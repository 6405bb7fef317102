// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X github.com/plum-lang/plum/pkg/buildinfo.Var=value" to
// "go build" or "go install".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/plum-lang/plum/pkg/prog"
)

// VersionBase is the version of Plum without the dev suffix. On development
// commits, it identifies the next release.
const VersionBase = "0.3.0"

// VCSOverride may be set during compilation to
// "time-commit" (e.g. "20220401235958-123456789012") for development builds
// made outside a VCS checkout.
var VCSOverride string

// BuildInfo contains all the build information.
type BuildInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"goversion"`
}

// Value contains the build information of the running binary.
var Value = BuildInfo{
	Version:   devVersion(VersionBase, VCSOverride, debug.ReadBuildInfo),
	GoVersion: runtime.Version(),
}

func devVersion(next, vcsOverride string, readBuildInfo func() (*debug.BuildInfo, bool)) string {
	if vcsOverride != "" {
		return next + "-dev.0." + vcsOverride
	}
	fallback := next + "-dev.unknown"
	bi, ok := readBuildInfo()
	if !ok {
		return fallback
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return strings.TrimPrefix(v, "v")
	}
	var revision, timestamp string
	modified := false
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			timestamp = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if revision == "" {
		return fallback
	}
	t, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return fallback
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	v := fmt.Sprintf("%s-dev.0.%s-%s", next, t.UTC().Format("20060102150405"), revision)
	if modified {
		v += "-dirty"
	}
	return v
}

// Program is the buildinfo subprogram.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	switch {
	case f.BuildInfo:
		if f.JSON {
			fmt.Fprintln(fds[1], mustToJSON(Value))
		} else {
			fmt.Fprintln(fds[1], "Version:", Value.Version)
			fmt.Fprintln(fds[1], "Go version:", Value.GoVersion)
		}
	case f.Version:
		if f.JSON {
			fmt.Fprintln(fds[1], mustToJSON(Value.Version))
		} else {
			fmt.Fprintln(fds[1], Value.Version)
		}
	default:
		return prog.ErrNotSuitable
	}
	return nil
}

func mustToJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
