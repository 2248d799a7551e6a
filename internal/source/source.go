// Package source loads suggestion lists from disk.
package source

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Load reads suggestions from path. YAML and JSON files hold either a list
// of strings or a mapping with a "suggestions" list. Anything else is read
// as plain text, one suggestion per non-blank line.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suggestions: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return parseYAML(data)
	default:
		return parseLines(data)
	}
}

type document struct {
	Suggestions []string `yaml:"suggestions"`
}

func parseYAML(data []byte) ([]string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions: %w", err)
	}
	if len(node.Content) == 0 {
		return []string{}, nil
	}

	var items []string
	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&items); err != nil {
			return nil, fmt.Errorf("failed to decode suggestions: %w", err)
		}
	case yaml.MappingNode:
		var doc document
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode suggestions: %w", err)
		}
		items = doc.Suggestions
	default:
		return nil, fmt.Errorf("suggestions must be a list or a mapping, got %s", root.ShortTag())
	}
	if items == nil {
		items = []string{}
	}
	return items, nil
}

func parseLines(data []byte) ([]string, error) {
	items := []string{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan suggestions: %w", err)
	}
	return items, nil
}

// ChangedMsg reports that the watched file was written or replaced.
type ChangedMsg struct {
	Path string
}

type WatchErrorMsg struct {
	Err error
}

// Watcher reports changes to one file. A single fsnotify watcher stays open
// between reports, so changes made while the host is reloading are queued
// rather than lost.
type Watcher struct {
	path    string
	target  string
	watcher *fsnotify.Watcher
}

func NewWatcher(path string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch file: %w", err)
	}
	return &Watcher{
		path:    path,
		target:  filepath.Clean(path),
		watcher: watcher,
	}, nil
}

// Next blocks until the file changes and reports it. Issue it again after
// each ChangedMsg to keep watching.
func (w *Watcher) Next() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return WatchErrorMsg{Err: fmt.Errorf("watcher closed")}
				}
				if filepath.Clean(event.Name) != w.target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					return ChangedMsg{Path: w.path}
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return WatchErrorMsg{Err: fmt.Errorf("watcher closed")}
				}
				return WatchErrorMsg{Err: err}
			}
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
