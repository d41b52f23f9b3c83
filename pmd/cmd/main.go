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
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"

	"github.com/golang/glog"
	"naive.systems/pmdwrapper/basic"
	"naive.systems/pmdwrapper/i18n"
	"naive.systems/pmdwrapper/options"
	"naive.systems/pmdwrapper/pmd"
	"naive.systems/pmdwrapper/srcstat"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML options file")
	srcDir := flag.String("src_dir", "", "Directory PMD scans")
	rules := flag.String("rules", "", "Ruleset reference understood by PMD, like category/apex/style.xml")
	format := flag.String("format", "xml", "Report format: xml, csv or txt")
	reportFile := flag.String("report_file", "", "Path PMD writes the report to")
	binDir := flag.String("bin_dir", "", "Directory containing run.sh and pmd.bat, overrides the options file")
	workingDir := flag.String("working_dir", "", "Directory the launcher path is relative to, overrides the options file")
	goos := flag.String("goos", runtime.GOOS, "Selects the launcher: windows uses pmd.bat, anything else run.sh")
	wait := flag.Bool("wait", false, "Wait for PMD and exit with its exit code")
	timeout := flag.Duration("timeout", 0, "Kill PMD after this long when -wait is set, 0 means no limit")
	showLineNumber := flag.Bool("show_line_number", false, "Print the lines of code under src_dir before running PMD")
	languages := flag.String("languages", "", "Comma separated languages counted by -show_line_number, like apex,java")
	lang := flag.String("lang", "", "Language of progress messages: en or zh")
	var ignoreDirPatterns basic.ArrayFlags
	flag.Var(&ignoreDirPatterns, "ignore_dir", "Doublestar pattern excluded from the line count")
	flag.Parse()
	defer glog.Flush()

	opts, err := options.Load(*configPath)
	if err != nil {
		glog.Fatalf("options.Load: %v", err)
	}
	opts.Update(&options.Options{
		BinDir:            *binDir,
		WorkingDir:        *workingDir,
		Languages:         options.SplitLanguages(*languages),
		Lang:              *lang,
		IgnoreDirPatterns: ignoreDirPatterns,
	})
	printer := i18n.GetPrinter(opts.Lang)

	reportFormat, err := pmd.ParseFormat(*format)
	if err != nil {
		glog.Fatal(err)
	}
	req := pmd.Request{
		Source:     *srcDir,
		Rules:      *rules,
		Format:     reportFormat,
		ReportFile: *reportFile,
	}

	if *showLineNumber {
		lines, err := srcstat.CountLines(req.Source, srcstat.GoclocLanguages(opts.Languages), opts.IgnoreDirPatterns)
		if err != nil {
			glog.Errorf("srcstat.CountLines: %v", err)
		} else {
			basic.PrintfWithTimeStamp("%s", printer.Sprintf(i18n.MsgLinesOfCode, lines, req.Source))
		}
	}

	invoker := pmd.NewInvoker(pmd.NewLauncher(*goos, opts.BinDir), pmd.ExecSpawner{Stdout: os.Stdout, Stderr: os.Stderr}, opts.WorkingDir)
	basic.PrintfWithTimeStamp("%s", printer.Sprintf(i18n.MsgStartRun, req.Source))
	if !*wait {
		invoker.Run(req)
		basic.PrintfWithTimeStamp("%s", printer.Sprintf(i18n.MsgRunStarted, req.Source, req.ReportFile))
		return
	}

	// PMD runs in its own process group and no longer sees the terminal's
	// interrupt, so forward it through the context.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}
	outcome, err := invoker.RunAndWait(ctx, req)
	basic.PrintfWithTimeStamp("%s", printer.Sprintf(i18n.MsgRunFinished, outcome.ExitCode, basic.FormatTimeDuration(outcome.Duration)))
	if err != nil {
		glog.Error(err)
		code := 1
		if outcome.ExitCode > 0 {
			code = outcome.ExitCode
		}
		glog.Flush()
		os.Exit(code)
	}
}
