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

package i18n

import (
	"github.com/golang/glog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	MsgStartRun       = "Start running PMD for %s"
	MsgRunStarted     = "PMD started for %s, report will be written to %s"
	MsgRunFinished    = "PMD finished with exit code %d [%s]"
	MsgLinesOfCode    = "%d lines of code under %s"
	MsgStartCatalog   = "Start cataloging PMD %s rules for %v"
	MsgCatalogWritten = "Catalog written to %s (%d rules, %d categories, %d rulesets)"
)

var languageMap = map[string]language.Tag{"en": language.English, "zh": language.Chinese}

var zhMessages = map[string]string{
	MsgStartRun:       "开始对 %s 运行 PMD",
	MsgRunStarted:     "已为 %s 启动 PMD，报告将写入 %s",
	MsgRunFinished:    "PMD 运行结束，退出码 %d [%s]",
	MsgLinesOfCode:    "%[2]s 下共有 %[1]d 行代码",
	MsgStartCatalog:   "开始为 %[2]v 编目 PMD %[1]s 规则",
	MsgCatalogWritten: "规则目录已写入 %s（%d 条规则，%d 个类别，%d 个规则集）",
}

func init() {
	for key, msg := range zhMessages {
		if err := message.SetString(language.Chinese, key, msg); err != nil {
			glog.Errorf("message.SetString(%q): %v", key, err)
		}
	}
}

// GetPrinter falls back to English for unknown languages.
func GetPrinter(lang string) *message.Printer {
	langTag, exist := languageMap[lang]
	if !exist {
		langTag = language.English
	}
	return message.NewPrinter(langTag)
}
