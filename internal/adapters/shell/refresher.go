// Package shell provides the usage refresher adapter. It runs the configured
// external usage tool and rewrites its JSON report as sourceable shell
// assignments for the usage cache domain.
package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"
	"unicode"

	"github.com/statline/statline/internal/core/domain"
	"github.com/statline/statline/internal/core/ports"
	"go.trai.ch/zerr"
)

// The usage tool reads local session files; it has no business running
// longer than this.
const refreshTimeout = 10 * time.Second

var _ ports.Refresher = (*Refresher)(nil)

// Refresher implements ports.Refresher using os/exec.
type Refresher struct {
	logger  ports.Logger
	command string
}

// NewRefresher creates a Refresher bound to the given command line. The
// command must print a usage report as JSON on stdout.
func NewRefresher(logger ports.Logger, command string) *Refresher {
	if command == "" {
		command = domain.DefaultUsageCommand
	}
	return &Refresher{logger: logger, command: command}
}

// Factory returns a ports.RefresherFactory over NewRefresher.
func Factory(logger ports.Logger) ports.RefresherFactory {
	return func(command string) ports.Refresher {
		return NewRefresher(logger, command)
	}
}

// usageReport is the subset of the usage tool's JSON output the status line
// consumes.
type usageReport struct {
	Blocks []usageBlock `json:"blocks"`
}

type usageBlock struct {
	IsActive bool `json:"isActive"`
	BurnRate *struct {
		CostPerHour float64 `json:"costPerHour"`
	} `json:"burnRate"`
	Projection *struct {
		TotalCost float64 `json:"totalCost"`
	} `json:"projection"`
}

// Refresh runs the usage command and returns the cache file contents: one
// sourceable assignment per line. Only the usage domain is refreshable this
// way.
func (r *Refresher) Refresh(ctx context.Context, dom domain.CacheDomain, key string) (string, error) {
	if dom != domain.CacheDomainUsage {
		return "", zerr.With(zerr.New("domain has no refresher"), "domain", string(dom))
	}

	parts, err := splitCommand(r.command)
	if err != nil {
		return "", err
	}
	if len(parts) == 0 {
		return "", zerr.New("empty usage command")
	}

	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...) //nolint:gosec // user provided command
	stdout := new(bytes.Buffer)
	cmd.Stdout = stdout
	cmd.Stderr = &logWriter{logger: r.logger}

	if err := cmd.Run(); err != nil {
		var exitCode int
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
		return "", zerr.With(zerr.Wrap(err, "usage command failed"), "exit_code", exitCode)
	}

	var report usageReport
	if err := json.Unmarshal(stdout.Bytes(), &report); err != nil {
		return "", zerr.Wrap(err, "failed to parse usage report")
	}

	return renderAssignments(report), nil
}

// splitCommand splits the configured command line into argv without invoking
// a shell. Single and double quotes group words; there is no further escape
// syntax. An unterminated quote is an error.
func splitCommand(command string) ([]string, error) {
	var args []string
	var word strings.Builder
	var quote rune
	inWord := false

	for _, r := range command {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				word.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		case unicode.IsSpace(r):
			if inWord {
				args = append(args, word.String())
				word.Reset()
				inWord = false
			}
		default:
			word.WriteRune(r)
			inWord = true
		}
	}
	if quote != 0 {
		return nil, zerr.With(zerr.New("unterminated quote in usage command"), "command", command)
	}
	if inWord {
		args = append(args, word.String())
	}
	return args, nil
}

// renderAssignments produces the usage cache file contents. The variable
// names are a stable contract with the emitted script, which sources this
// file verbatim.
func renderAssignments(report usageReport) string {
	burnRate := ""
	projection := ""

	for _, block := range report.Blocks {
		if !block.IsActive {
			continue
		}
		if block.BurnRate != nil {
			burnRate = fmt.Sprintf("$%.2f/h", block.BurnRate.CostPerHour)
		}
		if block.Projection != nil {
			projection = fmt.Sprintf("$%.2f", block.Projection.TotalCost)
		}
		break
	}

	var b strings.Builder
	fmt.Fprintf(&b, "usage_burn_rate='%s'\n", burnRate)
	fmt.Fprintf(&b, "usage_projection='%s'\n", projection)
	return b.String()
}

type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if line != "" {
			w.logger.Warn(line)
		}
	}
	return len(p), nil
}
