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
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/golang/glog"
	"github.com/hhatto/gocloc"
)

// PMD language names mapped to gocloc language names.
var pmdLanguages = map[string][]string{
	"apex":       {"Apex"},
	"java":       {"Java"},
	"javascript": {"JavaScript"},
	"plsql":      {"PL/SQL"},
	"xml":        {"XML"},
	"vf":         {"HTML"},
}

// GoclocLanguages translates PMD languages, dropping the ones gocloc does not know.
func GoclocLanguages(pmdLangs []string) []string {
	defined := gocloc.NewDefinedLanguages()
	langs := []string{}
	for _, pmdLang := range pmdLangs {
		for _, lang := range pmdLanguages[pmdLang] {
			if _, exists := defined.Langs[lang]; exists {
				langs = append(langs, lang)
			}
		}
	}
	return langs
}

func MatchIgnoreDirPatterns(ignoreDirPatterns []string, relPath string) (bool, error) {
	for _, pattern := range ignoreDirPatterns {
		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			return false, fmt.Errorf("malformed ignore_dir pattern %s", pattern)
		}
		if matched {
			glog.Infof("Source file %s ignored due to pattern %s", relPath, pattern)
			return true, nil
		}
	}
	return false, nil
}

// CountLines sums the code lines of countLangs (gocloc names) under srcDir.
// ignoreDirPatterns are matched against slash separated paths relative to
// srcDir.
func CountLines(srcDir string, countLangs []string, ignoreDirPatterns []string) (int, error) {
	if len(countLangs) == 0 {
		glog.Warningf("no countable language for %s", srcDir)
		return 0, nil
	}
	clocOpts := gocloc.NewClocOptions()
	for _, lang := range countLangs {
		clocOpts.IncludeLangs[lang] = struct{}{}
	}
	processor := gocloc.NewProcessor(gocloc.NewDefinedLanguages(), clocOpts)
	result, err := processor.Analyze([]string{srcDir})
	if err != nil {
		glog.Errorf("gocloc fail: %v", err)
		return 0, err
	}
	sum := 0
	for _, file := range result.Files {
		relPath, err := filepath.Rel(srcDir, file.Name)
		if err != nil {
			relPath = file.Name
		}
		matched, err := MatchIgnoreDirPatterns(ignoreDirPatterns, filepath.ToSlash(relPath))
		if err != nil {
			glog.Error(err)
			continue
		}
		if matched {
			continue
		}
		sum += int(file.Code)
	}
	return sum, nil
}
