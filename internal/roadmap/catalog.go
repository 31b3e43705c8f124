// Package roadmap serves fixed, topic-specific learning roadmaps.
package roadmap

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/ashureev/guideu/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog maps lowercase topic keys to their ordered steps.
// A Catalog is never mutated after construction and is safe for concurrent use.
type Catalog struct {
	topics map[string][]domain.RoadmapStep
}

// TopicInfo summarizes one catalog entry.
type TopicInfo struct {
	Topic string `json:"topic"`
	Steps int    `json:"steps"`
}

// NewCatalog builds a catalog from topic → steps, lowercasing keys.
// Every topic must have at least one step with a title.
func NewCatalog(topics map[string][]domain.RoadmapStep) (*Catalog, error) {
	c := &Catalog{topics: make(map[string][]domain.RoadmapStep, len(topics))}
	for name, steps := range topics {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			return nil, fmt.Errorf("topic name cannot be empty")
		}
		if _, dup := c.topics[key]; dup {
			return nil, fmt.Errorf("duplicate topic %q", key)
		}
		if len(steps) == 0 {
			return nil, fmt.Errorf("topic %q has no steps", key)
		}
		for i, s := range steps {
			if s.Title == "" {
				return nil, fmt.Errorf("topic %q step %d has no title", key, i+1)
			}
		}
		c.topics[key] = append([]domain.RoadmapStep(nil), steps...)
	}
	return c, nil
}

// ParseCatalog decodes a YAML document of the form `topic: [{title, description}, ...]`.
func ParseCatalog(data []byte) (*Catalog, error) {
	var topics map[string][]domain.RoadmapStep
	if err := yaml.Unmarshal(data, &topics); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return NewCatalog(topics)
}

// DefaultCatalog returns the built-in python, java and dsa roadmaps.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

// Steps returns the steps for a lowercase topic key.
// The returned slice is shared and must not be modified.
func (c *Catalog) Steps(topic string) ([]domain.RoadmapStep, bool) {
	steps, ok := c.topics[topic]
	return steps, ok
}

// Topics lists the catalog entries sorted by topic key.
func (c *Catalog) Topics() []TopicInfo {
	out := make([]TopicInfo, 0, len(c.topics))
	for name, steps := range c.topics {
		out = append(out, TopicInfo{Topic: name, Steps: len(steps)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Topic < out[j].Topic })
	return out
}
