//go:build windows

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
	"os/exec"
	"strconv"
	"syscall"

	"github.com/golang/glog"
)

// killTreeOnCancel kills the child and everything it started when the
// command's context is done.
func killTreeOnCancel(cmd *exec.Cmd) {
	cmd.Cancel = func() error {
		taskkill := exec.Command("taskkill", "/T", "/F", "/PID", strconv.Itoa(cmd.Process.Pid))
		if out, err := taskkill.CombinedOutput(); err != nil {
			glog.Warningf("taskkill: %v: %s", err, out)
			return cmd.Process.Kill()
		}
		return nil
	}
}

// useRawCommandLine hands a cmd.exe line over without MSVCRT quoting.
func useRawCommandLine(cmd *exec.Cmd, argv []string) {
	if line, ok := cmdExeLine(argv); ok {
		cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: line}
	}
}
