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

package srcstat

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const javaSource = `// greeting
public class Hello {
    int x;
}
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		t.Fatalf("os.MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}
}

func TestCountLines(t *testing.T) {
	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "src", "Hello.java"), javaSource)
	writeFile(t, filepath.Join(srcDir, "vendor", "lib", "Vendored.java"), javaSource+"class Vendored {}\n")
	for _, testCase := range [...]struct {
		name     string
		ignore   []string
		expected int
	}{
		{name: "all", ignore: nil, expected: 7},
		{name: "ignore vendor", ignore: []string{"vendor/**"}, expected: 3},
		{name: "ignore everything", ignore: []string{"**/*.java"}, expected: 0},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			lines, err := CountLines(srcDir, []string{"Java"}, testCase.ignore)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if lines != testCase.expected {
				t.Errorf("unexpected line count. got: %d, expected: %d", lines, testCase.expected)
			}
		})
	}
}

func TestCountLinesWithoutLanguages(t *testing.T) {
	lines, err := CountLines(t.TempDir(), nil, nil)
	if err != nil || lines != 0 {
		t.Errorf("expected 0 lines and no error, got %d, %v", lines, err)
	}
}

func TestGoclocLanguages(t *testing.T) {
	langs := GoclocLanguages([]string{"java", "javascript", "cobol"})
	expected := []string{"Java", "JavaScript"}
	if !reflect.DeepEqual(langs, expected) {
		t.Errorf("unexpected languages. got: %v, expected: %v", langs, expected)
	}
}

func TestMatchIgnoreDirPatterns(t *testing.T) {
	if _, err := MatchIgnoreDirPatterns([]string{"[a-"}, "a/b.java"); err == nil {
		t.Errorf("expected error for malformed pattern")
	}
	matched, err := MatchIgnoreDirPatterns([]string{"**/node_modules/**"}, "web/node_modules/x/y.js")
	if err != nil || !matched {
		t.Errorf("expected match, got %v, %v", matched, err)
	}
}
