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
	"reflect"
	"testing"
)

func TestNewLauncher(t *testing.T) {
	for _, testCase := range [...]struct {
		goos     string
		binDir   string
		expected string
	}{
		{goos: "linux", binDir: "", expected: "dist/pmd/bin/run.sh pmd"},
		{goos: "darwin", binDir: "dist/pmd/bin", expected: "dist/pmd/bin/run.sh pmd"},
		{goos: "freebsd", binDir: "/opt/pmd/bin/", expected: "/opt/pmd/bin/run.sh pmd"},
		{goos: "windows", binDir: "", expected: `dist\pmd\bin\pmd.bat`},
		{goos: "windows", binDir: `C:\pmd\bin`, expected: `C:\pmd\bin\pmd.bat`},
	} {
		t.Run(testCase.goos+"/"+testCase.binDir, func(t *testing.T) {
			command := NewLauncher(testCase.goos, testCase.binDir).Command()
			if command != testCase.expected {
				t.Errorf("unexpected launcher. got: %s, expected: %s", command, testCase.expected)
			}
		})
	}
}

func TestPosixArgvDoesNotExpand(t *testing.T) {
	argv, err := PosixLauncher{}.Argv("run.sh pmd -dir $HOME/src -reportfile out/*.xml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"run.sh", "pmd", "-dir", "$HOME/src", "-reportfile", "out/*.xml"}
	if !reflect.DeepEqual(argv, expected) {
		t.Errorf("unexpected argv. got: %v, expected: %v", argv, expected)
	}
}

func TestArgvRejectsEmptyLine(t *testing.T) {
	if _, err := (PosixLauncher{}).Argv("  "); err == nil {
		t.Errorf("expected error for empty posix command line")
	}
	if _, err := (WindowsLauncher{}).Argv(""); err == nil {
		t.Errorf("expected error for empty windows command line")
	}
}

func TestParseFormat(t *testing.T) {
	for _, testCase := range [...]struct {
		raw       string
		expected  Format
		expectErr bool
	}{
		{raw: "xml", expected: XML},
		{raw: "CSV", expected: CSV},
		{raw: "txt", expected: TEXT},
		{raw: "text", expected: TEXT},
		{raw: "sarif", expectErr: true},
	} {
		t.Run(testCase.raw, func(t *testing.T) {
			format, err := ParseFormat(testCase.raw)
			if (err != nil) != testCase.expectErr {
				t.Fatalf("unexpected error: %v", err)
			}
			if format != testCase.expected {
				t.Errorf("unexpected format. got: %s, expected: %s", format, testCase.expected)
			}
		})
	}
}

func TestCmdExeLine(t *testing.T) {
	argv, err := (WindowsLauncher{}).Argv(`dist\pmd\bin\pmd.bat -rulesets "my rules.xml" -dir src`)
	if err != nil {
		t.Fatalf("Argv: %v", err)
	}
	for _, testCase := range [...]struct {
		name     string
		argv     []string
		expected string
		ok       bool
	}{
		{
			name:     "windows launcher",
			argv:     argv,
			expected: `cmd.exe /C dist\pmd\bin\pmd.bat -rulesets "my rules.xml" -dir src`,
			ok:       true,
		},
		{name: "posix argv", argv: []string{"dist/pmd/bin/run.sh", "pmd", "-dir"}},
		{name: "short", argv: []string{"cmd.exe", "/C"}},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			line, ok := cmdExeLine(testCase.argv)
			if ok != testCase.ok || line != testCase.expected {
				t.Errorf("unexpected line. got: %q %v, expected: %q %v", line, ok, testCase.expected, testCase.ok)
			}
		})
	}
}
