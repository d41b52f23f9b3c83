/*
NaiveSystems Analyze - A tool for static code analysis
Copyright (C) 2023  Naive Systems Ltd.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package pmd

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
)

// Request describes one PMD run. None of the fields are validated; they are
// handed to PMD verbatim.
type Request struct {
	Source     string
	Rules      string
	Format     Format
	ReportFile string
}

// CommandLine concatenates the launcher and the request flags without any
// quoting.
func CommandLine(launcher Launcher, req Request) string {
	return launcher.Command() +
		" -rulesets " + req.Rules +
		" -dir " + req.Source +
		" -format " + req.Format.String() +
		" -reportfile " + req.ReportFile
}

// Outcome is what RunAndWait observed about a finished PMD process.
type Outcome struct {
	ID          string
	CommandLine string
	ExitCode    int
	Stderr      string
	Duration    time.Duration
}

type ExitError struct {
	CommandLine string
	ExitCode    int
	Stderr      string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d: %s", e.CommandLine, e.ExitCode, e.Stderr)
}

type Invoker struct {
	launcher   Launcher
	spawner    Spawner
	workingDir string
}

// NewInvoker uses ExecSpawner when spawner is nil. workingDir is where the
// relative launcher path is resolved from; empty means the current directory.
func NewInvoker(launcher Launcher, spawner Spawner, workingDir string) *Invoker {
	if spawner == nil {
		spawner = ExecSpawner{}
	}
	return &Invoker{
		launcher:   launcher,
		spawner:    spawner,
		workingDir: workingDir,
	}
}

// Execute runs PMD with the launcher of the running host and returns without
// waiting for it.
func Execute(source, rules string, format Format, reportFile string) {
	invoker := NewInvoker(NewLauncher(runtime.GOOS, DefaultBinDir), nil, "")
	invoker.Run(Request{
		Source:     source,
		Rules:      rules,
		Format:     format,
		ReportFile: reportFile,
	})
}

func (inv *Invoker) Launcher() Launcher {
	return inv.launcher
}

// Run starts PMD and returns immediately. It never reports whether PMD could
// be started or how it finished; both only reach the log.
func (inv *Invoker) Run(req Request) {
	taskName := "pmd-" + uuid.NewString()
	commandLine := CommandLine(inv.launcher, req)
	argv, err := inv.launcher.Argv(commandLine)
	if err != nil {
		glog.Errorf("in %s, invalid command line %q: %v", taskName, commandLine, err)
		return
	}
	err = inv.spawner.Start(taskName, argv, inv.workingDir)
	if err != nil {
		glog.Errorf("in %s, failed to start %s: %v", taskName, commandLine, err)
	}
}

// RunAndWait runs PMD to completion. A non-zero exit is returned as *ExitError
// together with the Outcome. Cancelling ctx kills PMD.
func (inv *Invoker) RunAndWait(ctx context.Context, req Request) (*Outcome, error) {
	outcome := &Outcome{
		ID:          uuid.NewString(),
		CommandLine: CommandLine(inv.launcher, req),
		ExitCode:    -1,
	}
	taskName := "pmd-" + outcome.ID
	argv, err := inv.launcher.Argv(outcome.CommandLine)
	if err != nil {
		return outcome, fmt.Errorf("launcher.Argv: %v", err)
	}
	start := time.Now()
	stderr, err := inv.spawner.Run(ctx, taskName, argv, inv.workingDir)
	outcome.Duration = time.Since(start)
	outcome.Stderr = string(stderr)
	if err == nil {
		outcome.ExitCode = 0
		return outcome, nil
	}
	if ctx.Err() != nil {
		glog.Errorf("in %s, %s: %v", taskName, outcome.CommandLine, ctx.Err())
		return outcome, fmt.Errorf("in %s: %w", taskName, ctx.Err())
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) && coded.ExitCode() >= 0 {
		outcome.ExitCode = coded.ExitCode()
		glog.Errorf("in %s, %s exited with code %d", taskName, outcome.CommandLine, outcome.ExitCode)
		return outcome, &ExitError{
			CommandLine: outcome.CommandLine,
			ExitCode:    outcome.ExitCode,
			Stderr:      outcome.Stderr,
		}
	}
	glog.Errorf("in %s, failed to run %s: %v", taskName, outcome.CommandLine, err)
	return outcome, fmt.Errorf("spawner.Run: %w", err)
}
