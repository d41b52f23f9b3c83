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
	"fmt"
	"strings"

	"github.com/google/shlex"
)

const DefaultBinDir = "dist/pmd/bin"

// Launcher is the platform specific entry point that bootstraps PMD.
type Launcher interface {
	// Command is the leading part of every command line, e.g. "dist/pmd/bin/run.sh pmd".
	Command() string
	// Argv turns a complete command line into the argument vector to execute.
	Argv(commandLine string) ([]string, error)
}

// PosixLauncher runs PMD through run.sh with the pmd subcommand.
type PosixLauncher struct {
	BinDir string
}

func (l PosixLauncher) Command() string {
	return joinBinDir(l.BinDir, "/", "run.sh") + " pmd"
}

// Argv splits the line with shell word rules. Nothing is expanded, so a path
// containing spaces is broken into several words just as an unquoted shell
// line would be.
func (l PosixLauncher) Argv(commandLine string) ([]string, error) {
	argv, err := shlex.Split(commandLine)
	if err != nil {
		return nil, fmt.Errorf("shlex.Split: %v", err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty command line")
	}
	return argv, nil
}

// WindowsLauncher runs PMD through pmd.bat.
type WindowsLauncher struct {
	BinDir string
}

func (l WindowsLauncher) Command() string {
	return joinBinDir(l.BinDir, `\`, "pmd.bat")
}

// Argv hands the whole line to cmd.exe, which is the only way to run a batch file.
func (l WindowsLauncher) Argv(commandLine string) ([]string, error) {
	if strings.TrimSpace(commandLine) == "" {
		return nil, fmt.Errorf("empty command line")
	}
	return []string{"cmd.exe", "/C", commandLine}, nil
}

// cmdExeLine rebuilds the raw command line for an argv produced by
// WindowsLauncher.Argv. cmd.exe does not follow the MSVCRT quoting rules
// os/exec applies, so the line has to reach it verbatim.
func cmdExeLine(argv []string) (string, bool) {
	if len(argv) != 3 || !strings.EqualFold(argv[0], "cmd.exe") || !strings.EqualFold(argv[1], "/C") {
		return "", false
	}
	return strings.Join(argv, " "), true
}

func joinBinDir(binDir, sep, name string) string {
	if binDir == "" {
		binDir = DefaultBinDir
	}
	if sep == `\` {
		binDir = strings.ReplaceAll(binDir, "/", sep)
	}
	return strings.TrimRight(binDir, sep) + sep + name
}

// NewLauncher picks the launcher for goos (a runtime.GOOS value).
func NewLauncher(goos, binDir string) Launcher {
	if goos == "windows" {
		return WindowsLauncher{BinDir: binDir}
	}
	return PosixLauncher{BinDir: binDir}
}
