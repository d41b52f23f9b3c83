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
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// xmlRuleset is the root element of both category and ruleset files.
type xmlRuleset struct {
	Name        string    `xml:"name,attr"`
	Description string    `xml:"description"`
	Rules       []xmlRule `xml:"rule"`
}

type xmlRule struct {
	Name        string       `xml:"name,attr"`
	Ref         string       `xml:"ref,attr"`
	Class       string       `xml:"class,attr"`
	Message     string       `xml:"message,attr"`
	Since       string       `xml:"since,attr"`
	Deprecated  string       `xml:"deprecated,attr"`
	Description string       `xml:"description"`
	Priority    string       `xml:"priority"`
	Excludes    []xmlExclude `xml:"exclude"`
}

type xmlExclude struct {
	Name string `xml:"name,attr"`
}

// charsetReader decodes rule files that declare a non UTF-8 encoding.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	e, err := ianaindex.MIME.Encoding(charset)
	if err != nil {
		return nil, fmt.Errorf("ianaindex.MIME.Encoding(%s): %v", charset, err)
	}
	if e == nil {
		return nil, fmt.Errorf("unsupported charset: %s", charset)
	}
	return transform.NewReader(input, e.NewDecoder()), nil
}

func parseRuleset(path string, content []byte) (*xmlRuleset, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))
	decoder.CharsetReader = charsetReader
	root := &xmlRuleset{}
	if err := decoder.Decode(root); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrXMLParse, path, err)
	}
	root.Name = strings.TrimSpace(root.Name)
	root.Description = normalizeText(root.Description)
	return root, nil
}

// normalizeText collapses the indentation PMD uses inside description elements.
func normalizeText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
