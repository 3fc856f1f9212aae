package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Matches both [table] and [[array-of-tables]] headers, optionally indented.
var sectionRegex = regexp.MustCompile(`^(\s*)\[\[?([^\]]+)\]\]?\s*$`)

// sectionOrder is the order top-level sections are written in. Sections not
// listed here follow, in encoder order.
var sectionOrder = []string{"logging", "filtering", "database", "sources"}

const configHeader = `# blockrules configuration
# Run 'blockrules config schema' for the JSON schema of this file.

`

// WriteConfig encodes cfg as TOML and replaces path atomically. Struct fields
// keep their definition order; sections follow sectionOrder and [[sources]]
// entries keep their order.
func WriteConfig(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	content := configHeader + orderSections(buf.String())

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

func sectionRank(header string) int {
	// Nested tables rank with their top-level parent.
	top, _, _ := strings.Cut(header, ".")
	for i, name := range sectionOrder {
		if top == name {
			return i
		}
	}
	return len(sectionOrder)
}

// orderSections reorders TOML content by sectionRank, keeping relative order
// within a rank. Lines before the first section stay on top.
func orderSections(content string) string {
	type section struct {
		header string
		lines  []string
	}

	var (
		sections []section
		current  *section
		preamble []string
	)
	for _, line := range strings.Split(content, "\n") {
		if match := sectionRegex.FindStringSubmatch(line); match != nil {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &section{header: strings.TrimSpace(match[2]), lines: []string{line}}
			continue
		}
		if current != nil {
			current.lines = append(current.lines, line)
		} else {
			preamble = append(preamble, line)
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sectionRank(sections[i].header) < sectionRank(sections[j].header)
	})

	var blocks []string
	if p := strings.TrimSpace(strings.Join(preamble, "\n")); p != "" {
		blocks = append(blocks, p)
	}
	for _, sec := range sections {
		blocks = append(blocks, strings.TrimRight(strings.Join(sec.lines, "\n"), "\n"))
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
