// Package docs embeds the pts documentation topics, one markdown file each.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var files embed.FS

// Index is the topic listing every other topic.
const Index = "readme"

// All selects every topic but the index.
const All = "*"

// Topic returns the markdown of a topic.
func Topic(name string) (string, error) {
	content, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics concatenates the markdown of the given topics, All expands to List().
func Topics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		expanded := []string{name}
		if name == All {
			var err error
			if expanded, err = List(); err != nil {
				return "", err
			}
		}
		for _, name := range expanded {
			content, err := Topic(name)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// List returns the sorted topic names, the index excluded.
func List() ([]string, error) {
	paths, err := fs.Glob(files, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, path := range paths {
		if name := strings.TrimSuffix(path, ".md"); name != Index {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics, nil
}
