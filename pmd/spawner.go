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
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/golang/glog"
)

// Spawner creates the PMD process. Tests substitute a recording double.
type Spawner interface {
	// Start launches argv and returns as soon as the process exists.
	Start(taskName string, argv []string, workingDir string) error
	// Run launches argv, waits for it and returns what it wrote to stderr.
	Run(ctx context.Context, taskName string, argv []string, workingDir string) ([]byte, error)
}

type ExecSpawner struct {
	// Stdout receives the child's standard output. Discarded when nil.
	Stdout io.Writer
	// Stderr receives the child's standard error. Discarded when nil. Run
	// captures stderr for the Outcome in any case.
	Stderr io.Writer
}

// waitDelay bounds how long Run keeps reading the child's output after the
// process tree has been killed.
var waitDelay = 10 * time.Second

func (s ExecSpawner) Start(taskName string, argv []string, workingDir string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = workingDir
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	useRawCommandLine(cmd, argv)
	glog.Infof("in %s, executing: $ %s", taskName, cmd.String())
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cmd.Start: %v", err)
	}
	// Reap the child. The exit status only goes to the log.
	go func() {
		if err := cmd.Wait(); err != nil {
			glog.Warningf("in %s, %s finished: %v", taskName, argv[0], err)
			return
		}
		glog.Infof("in %s, %s finished", taskName, argv[0])
	}()
	return nil
}

func (s ExecSpawner) Run(ctx context.Context, taskName string, argv []string, workingDir string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = workingDir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if s.Stderr != nil {
		cmd.Stderr = io.MultiWriter(&stderr, s.Stderr)
	}
	cmd.Stdout = s.Stdout
	useRawCommandLine(cmd, argv)
	// run.sh starts java as its own child, so cancellation has to reach the
	// whole tree and not just the launcher.
	killTreeOnCancel(cmd)
	cmd.WaitDelay = waitDelay
	glog.Infof("in %s, executing: $ %s", taskName, cmd.String())
	err := cmd.Run()
	return stderr.Bytes(), err
}
