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

package catalog

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/golang/glog"
	"golang.org/x/exp/slices"
)

const (
	categoryPattern = "category/**/*.xml"
	rulesetPattern  = "rulesets/**/*.xml"
)

var (
	ErrNoSuchJar     = errors.New("no PMD jar found")
	ErrJarReadFailed = errors.New("failed to read PMD jar")
	ErrXMLParse      = errors.New("failed to parse PMD xml")
	ErrJSONWrite     = errors.New("failed to write catalog json")
)

// ExitCode maps cataloger errors to the process exit code of pmd_cataloger.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrNoSuchJar):
		return 1
	case errors.Is(err, ErrJarReadFailed):
		return 2
	case errors.Is(err, ErrXMLParse):
		return 3
	case errors.Is(err, ErrJSONWrite):
		return 4
	default:
		return 5
	}
}

// jarFiles holds the rule definition files of one language jar, keyed by
// their path inside the jar.
type jarFiles struct {
	categoryPaths []string
	rulesetPaths  []string
	contents      map[string][]byte
}

func readJar(jarPath, language string) (*jarFiles, error) {
	reader, err := zip.OpenReader(jarPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w for language %s: %s", ErrNoSuchJar, language, jarPath)
		}
		return nil, fmt.Errorf("%w for language %s: %v", ErrJarReadFailed, language, err)
	}
	defer reader.Close()

	files := &jarFiles{contents: make(map[string][]byte)}
	for _, entry := range reader.File {
		isCategory, err := doublestar.Match(categoryPattern, entry.Name)
		if err != nil {
			return nil, err
		}
		isRuleset, err := doublestar.Match(rulesetPattern, entry.Name)
		if err != nil {
			return nil, err
		}
		if !isCategory && !isRuleset {
			continue
		}
		content, err := readEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("%w for language %s: %s: %v", ErrJarReadFailed, language, entry.Name, err)
		}
		files.contents[entry.Name] = content
		if isCategory {
			files.categoryPaths = append(files.categoryPaths, entry.Name)
		} else {
			files.rulesetPaths = append(files.rulesetPaths, entry.Name)
		}
	}
	slices.Sort(files.categoryPaths)
	slices.Sort(files.rulesetPaths)
	glog.Infof("%s: %d category files, %d ruleset files", jarPath, len(files.categoryPaths), len(files.rulesetPaths))
	return files, nil
}

func readEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
