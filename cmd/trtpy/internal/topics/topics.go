// Package topics loads help topics from the toolkit's docs directory
// so `trtpy topics` can show documentation beyond command help.
package topics

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Topic is one help document
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Manager scans a docs directory for topic files
type Manager struct {
	docsDir    string
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Options configures the Manager
type Options struct {
	// Extensions to consider as topics; defaults to .txt and .md
	Extensions []string

	// Renderer for formatting topic content; defaults to PlainRenderer
	Renderer Renderer
}

// New creates a Manager over the given docs directory
func New(docsDir string, opts Options) *Manager {
	m := &Manager{
		docsDir:    docsDir,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}
	return m
}

// Scan loads the topic files. A missing docs directory is not an
// error; it just means no topics.
func (m *Manager) Scan() error {
	if _, err := os.Stat(m.docsDir); os.IsNotExist(err) {
		return nil
	}

	return filepath.Walk(m.docsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if !m.wantExtension(ext) {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(path), ext)
		m.topics[name] = &Topic{
			Name:     name,
			FilePath: path,
			Content:  string(content),
		}
		return nil
	})
}

// Names returns the sorted topic names
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get looks up a topic by name
func (m *Manager) Get(name string) (*Topic, bool) {
	topic, ok := m.topics[name]
	return topic, ok
}

// Render formats a topic's content with the configured renderer
func (m *Manager) Render(topic *Topic) string {
	return m.renderer.Render(topic.Content, filepath.Ext(topic.FilePath))
}

func (m *Manager) wantExtension(ext string) bool {
	for _, want := range m.extensions {
		if ext == want {
			return true
		}
	}
	return false
}
