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

package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"naive.systems/pmdwrapper/basic"
	"naive.systems/pmdwrapper/catalog"
	"naive.systems/pmdwrapper/i18n"
	"naive.systems/pmdwrapper/options"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML options file")
	pmdVersion := flag.String("pmd_version", "", "Version of PMD being used, like 6.20.0")
	libDir := flag.String("lib_dir", "", "Path to PMD's lib folder")
	languages := flag.String("languages", "", "Comma separated languages whose rules are catalogued, like apex,java")
	catalogDir := flag.String("catalog_dir", "", "Directory PmdCatalog.json is written to")
	lang := flag.String("lang", "", "Language of progress messages: en or zh")
	flag.Parse()
	defer glog.Flush()

	opts, err := options.Load(*configPath)
	if err != nil {
		glog.Fatalf("options.Load: %v", err)
	}
	opts.Update(&options.Options{
		PmdVersion: *pmdVersion,
		LibDir:     *libDir,
		Languages:  options.SplitLanguages(*languages),
		CatalogDir: *catalogDir,
		Lang:       *lang,
	})
	if err := opts.Validate(); err != nil {
		glog.Fatal(err)
	}
	printer := i18n.GetPrinter(opts.Lang)

	basic.PrintfWithTimeStamp("%s", printer.Sprintf(i18n.MsgStartCatalog, opts.PmdVersion, opts.Languages))
	cataloger := catalog.NewCataloger(opts.PmdVersion, opts.LibDir, opts.Languages)
	result, path, err := cataloger.CatalogRules(opts.CatalogDir)
	if err != nil {
		glog.Errorf("cataloger.CatalogRules: %v", err)
		glog.Flush()
		os.Exit(catalog.ExitCode(err))
	}
	basic.PrintfWithTimeStamp("%s", printer.Sprintf(i18n.MsgCatalogWritten, path, len(result.Rules), len(result.Categories), len(result.Rulesets)))
}
