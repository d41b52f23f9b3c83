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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/exp/slices"
	"naive.systems/pmdwrapper/atomic"
)

const CatalogFileName = "PmdCatalog.json"

type Category struct {
	Name     string `json:"name"`
	Language string `json:"language"`
	Path     string `json:"path"`
}

type Rule struct {
	Name        string   `json:"name"`
	Message     string   `json:"message"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Priority    string   `json:"priority,omitempty"`
	Since       string   `json:"since,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty"`
	Categories  []string `json:"categories"`
	Rulesets    []string `json:"rulesets"`

	categoryPath string
}

type Ruleset struct {
	Name         string   `json:"name"`
	Language     string   `json:"language"`
	Path         string   `json:"path"`
	Description  string   `json:"description"`
	Dependencies []string `json:"dependencies"`

	refs      []ruleRef
	dependsOn []dependency
}

// ruleRef is one <rule ref="..."> of a ruleset file. ruleName is empty when
// the whole file at path is referenced.
type ruleRef struct {
	path     string
	ruleName string
	excludes []string
}

// dependency is a ruleset pulled in by another. only is set when a single
// rule of it is referenced, e.g. "rulesets/apex/quickstart.xml/AvoidGlobalModifier".
type dependency struct {
	ruleset  *Ruleset
	excludes []string
	only     string
}

type Catalog struct {
	Rules      []*Rule     `json:"rules"`
	Categories []*Category `json:"categories"`
	Rulesets   []*Ruleset  `json:"rulesets"`
}

type Cataloger struct {
	PmdVersion string
	LibDir     string
	Languages  []string
}

func NewCataloger(pmdVersion, libDir string, languages []string) *Cataloger {
	return &Cataloger{
		PmdVersion: pmdVersion,
		LibDir:     libDir,
		Languages:  languages,
	}
}

// JarPath is where PMD keeps the rule definitions of language.
func (c *Cataloger) JarPath(language string) string {
	return filepath.Join(c.LibDir, "pmd-"+language+"-"+c.PmdVersion+".jar")
}

// Build reads every language jar and links rules, categories and rulesets.
func (c *Cataloger) Build() (*Catalog, error) {
	catalog := &Catalog{
		Rules:      []*Rule{},
		Categories: []*Category{},
		Rulesets:   []*Ruleset{},
	}
	for _, language := range c.Languages {
		files, err := readJar(c.JarPath(language), language)
		if err != nil {
			return nil, err
		}
		var rules []*Rule
		for _, path := range files.categoryPaths {
			category, categoryRules, err := processCategoryFile(language, path, files.contents[path])
			if err != nil {
				return nil, err
			}
			catalog.Categories = append(catalog.Categories, category)
			rules = append(rules, categoryRules...)
		}
		var rulesets []*Ruleset
		for _, path := range files.rulesetPaths {
			ruleset, err := generateRulesetRepresentation(language, path, files.contents[path])
			if err != nil {
				return nil, err
			}
			rulesets = append(rulesets, ruleset)
		}
		linkDependentRulesets(rulesets)
		linkRulesToRulesets(rules, rulesets)
		catalog.Rules = append(catalog.Rules, rules...)
		catalog.Rulesets = append(catalog.Rulesets, rulesets...)
	}
	return catalog, nil
}

// CatalogRules builds the catalog and writes it to catalogDir.
func (c *Cataloger) CatalogRules(catalogDir string) (*Catalog, string, error) {
	catalog, err := c.Build()
	if err != nil {
		return nil, "", err
	}
	path, err := WriteCatalog(catalog, catalogDir)
	if err != nil {
		return catalog, "", err
	}
	return catalog, path, nil
}

func WriteCatalog(catalog *Catalog, catalogDir string) (string, error) {
	path := filepath.Join(catalogDir, CatalogFileName)
	if err := atomic.WriteJSON(path, catalog); err != nil {
		return "", fmt.Errorf("%w: %v", ErrJSONWrite, err)
	}
	return path, nil
}

func processCategoryFile(language, path string, content []byte) (*Category, []*Rule, error) {
	root, err := parseRuleset(path, content)
	if err != nil {
		return nil, nil, err
	}
	category := &Category{Name: root.Name, Language: language, Path: path}
	rules := []*Rule{}
	for _, node := range root.Rules {
		// References to rules moved into another category are not definitions.
		if node.Class == "" && node.Ref != "" {
			continue
		}
		if node.Name == "" {
			glog.Warningf("rule without name in %s", path)
			continue
		}
		rules = append(rules, &Rule{
			Name:         node.Name,
			Message:      strings.TrimSpace(node.Message),
			Description:  normalizeText(node.Description),
			Language:     language,
			Priority:     strings.TrimSpace(node.Priority),
			Since:        node.Since,
			Deprecated:   node.Deprecated == "true",
			Categories:   []string{category.Name},
			Rulesets:     []string{},
			categoryPath: path,
		})
	}
	return category, rules, nil
}

func generateRulesetRepresentation(language, path string, content []byte) (*Ruleset, error) {
	root, err := parseRuleset(path, content)
	if err != nil {
		return nil, err
	}
	ruleset := &Ruleset{
		Name:         root.Name,
		Language:     language,
		Path:         path,
		Description:  root.Description,
		Dependencies: []string{},
	}
	for _, node := range root.Rules {
		if node.Ref == "" {
			continue
		}
		ref := parseRef(strings.TrimSpace(node.Ref))
		for _, exclude := range node.Excludes {
			ref.excludes = append(ref.excludes, exclude.Name)
		}
		ruleset.refs = append(ruleset.refs, ref)
	}
	return ruleset, nil
}

// parseRef splits "category/apex/design.xml/ExcessiveClassLength" into the
// file path and the rule name.
func parseRef(ref string) ruleRef {
	if strings.HasSuffix(ref, ".xml") {
		return ruleRef{path: ref}
	}
	idx := strings.LastIndex(ref, "/")
	if idx > 0 && strings.HasSuffix(ref[:idx], ".xml") {
		return ruleRef{path: ref[:idx], ruleName: ref[idx+1:]}
	}
	return ruleRef{path: ref}
}

func linkDependentRulesets(rulesets []*Ruleset) {
	rulesetsByPath := make(map[string]*Ruleset)
	for _, ruleset := range rulesets {
		rulesetsByPath[ruleset.Path] = ruleset
	}
	for _, ruleset := range rulesets {
		for _, ref := range ruleset.refs {
			dep, exist := rulesetsByPath[ref.path]
			if !exist || dep == ruleset {
				continue
			}
			ruleset.dependsOn = append(ruleset.dependsOn, dependency{ruleset: dep, excludes: ref.excludes, only: ref.ruleName})
			if !slices.Contains(ruleset.Dependencies, dep.Name) {
				ruleset.Dependencies = append(ruleset.Dependencies, dep.Name)
			}
		}
	}
}

func linkRulesToRulesets(rules []*Rule, rulesets []*Ruleset) {
	for _, rule := range rules {
		for _, ruleset := range rulesets {
			if ruleset.references(rule, make(map[*Ruleset]bool)) && !slices.Contains(rule.Rulesets, ruleset.Name) {
				rule.Rulesets = append(rule.Rulesets, ruleset.Name)
			}
		}
	}
}

// references reports whether r pulls in rule directly, through its whole
// category, or through a ruleset it depends on.
func (r *Ruleset) references(rule *Rule, visited map[*Ruleset]bool) bool {
	if visited[r] {
		return false
	}
	visited[r] = true
	for _, ref := range r.refs {
		if ref.path != rule.categoryPath {
			continue
		}
		if ref.ruleName == rule.Name {
			return true
		}
		if ref.ruleName == "" && !slices.Contains(ref.excludes, rule.Name) {
			return true
		}
	}
	for _, dep := range r.dependsOn {
		if slices.Contains(dep.excludes, rule.Name) || (dep.only != "" && dep.only != rule.Name) {
			continue
		}
		if dep.ruleset.references(rule, visited) {
			return true
		}
	}
	return false
}
