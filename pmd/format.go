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
)

// Format is the report serialization PMD writes to the report file.
type Format string

const (
	XML  Format = "xml"
	CSV  Format = "csv"
	TEXT Format = "txt"
)

var supportFormats = map[string]Format{
	"xml":  XML,
	"csv":  CSV,
	"txt":  TEXT,
	"text": TEXT,
}

func ParseFormat(raw string) (Format, error) {
	format, exist := supportFormats[strings.ToLower(strings.TrimSpace(raw))]
	if !exist {
		return "", fmt.Errorf("unsupported report format: %v", raw)
	}
	return format, nil
}

func (f Format) String() string {
	return string(f)
}
