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

package options

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
	"gopkg.in/yaml.v2"
)

// Options is the configuration shared by pmd_wrapper and pmd_cataloger. It
// can be read from a YAML file and individual fields overridden by flags.
type Options struct {
	BinDir     string   `yaml:"bin_dir,omitempty"`
	LibDir     string   `yaml:"lib_dir,omitempty"`
	WorkingDir string   `yaml:"working_dir,omitempty"`
	PmdVersion string   `yaml:"pmd_version,omitempty"`
	Languages  []string `yaml:"languages,omitempty"`
	CatalogDir string   `yaml:"catalog_dir,omitempty"`
	Lang       string   `yaml:"lang,omitempty"`
	// IgnoreDirPatterns are doublestar patterns excluded from the line count.
	IgnoreDirPatterns []string `yaml:"ignore_dir,omitempty"`
}

func Default() *Options {
	return &Options{
		BinDir:     "dist/pmd/bin",
		LibDir:     "dist/pmd/lib",
		PmdVersion: "6.20.0",
		Languages:  []string{"apex", "java", "javascript"},
		CatalogDir: "catalogs",
		Lang:       "en",
	}
}

// Load reads path on top of the defaults. An empty path returns the defaults.
func Load(path string) (*Options, error) {
	opts := Default()
	if path == "" {
		return opts, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %v", err)
	}
	fileOpts := &Options{}
	err = yaml.UnmarshalStrict(content, fileOpts)
	if err != nil {
		return nil, fmt.Errorf("yaml.UnmarshalStrict(%s): %v", path, err)
	}
	opts.Update(fileOpts)
	glog.Infof("loaded options from %s", path)
	return opts, nil
}

// Update copies every non-empty field of newOptions.
func (opts *Options) Update(newOptions *Options) {
	if newOptions.BinDir != "" {
		opts.BinDir = newOptions.BinDir
	}
	if newOptions.LibDir != "" {
		opts.LibDir = newOptions.LibDir
	}
	if newOptions.WorkingDir != "" {
		opts.WorkingDir = newOptions.WorkingDir
	}
	if newOptions.PmdVersion != "" {
		opts.PmdVersion = newOptions.PmdVersion
	}
	if len(newOptions.Languages) != 0 {
		opts.Languages = newOptions.Languages
	}
	if newOptions.CatalogDir != "" {
		opts.CatalogDir = newOptions.CatalogDir
	}
	if newOptions.Lang != "" {
		opts.Lang = newOptions.Lang
	}
	if len(newOptions.IgnoreDirPatterns) != 0 {
		opts.IgnoreDirPatterns = newOptions.IgnoreDirPatterns
	}
}

func (opts *Options) Validate() error {
	if opts.PmdVersion == "" {
		return errors.New("pmd_version must not be empty")
	}
	for _, lang := range opts.Languages {
		if strings.TrimSpace(lang) == "" {
			return errors.New("languages must not contain empty entries")
		}
	}
	return nil
}

// SplitLanguages parses a comma separated list such as "apex, java".
func SplitLanguages(raw string) []string {
	languages := []string{}
	for _, lang := range strings.Split(raw, ",") {
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang != "" {
			languages = append(languages, lang)
		}
	}
	return languages
}

func (opts *Options) String() string {
	out, err := yaml.Marshal(opts)
	if err != nil {
		glog.Errorf("failed to marshal options: %v", err)
		return ""
	}
	return string(out)
}
