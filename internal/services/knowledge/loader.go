package knowledge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fileBase struct {
	Topics []fileTopic `yaml:"topics"`
}

type fileTopic struct {
	Name      string         `yaml:"name"`
	Keywords  []string       `yaml:"keywords"`
	Responses []string       `yaml:"responses"`
	Subtopics []fileSubTopic `yaml:"subtopics"`
}

type fileSubTopic struct {
	Key       string   `yaml:"key"`
	Responses []string `yaml:"responses"`
}

// Parse decodes a YAML knowledge base. Each topic carries either a flat
// responses list or a subtopics list, never both.
func Parse(data []byte) (*Base, error) {
	var fb fileBase
	if err := yaml.Unmarshal(data, &fb); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge base: %w", err)
	}

	topics := make([]Topic, 0, len(fb.Topics))
	for _, ft := range fb.Topics {
		t := Topic{Name: ft.Name, Keywords: ft.Keywords}
		switch {
		case len(ft.Responses) > 0 && len(ft.Subtopics) > 0:
			return nil, fmt.Errorf("topic %q has both responses and subtopics", ft.Name)
		case len(ft.Responses) > 0:
			t.Responses = ResponseList(ft.Responses)
		case len(ft.Subtopics) > 0:
			groups := make(GroupedResponses, len(ft.Subtopics))
			for i, sub := range ft.Subtopics {
				groups[i] = SubTopic{Key: sub.Key, Responses: sub.Responses}
			}
			t.Responses = groups
		}
		topics = append(topics, t)
	}

	return NewBase(topics)
}

// LoadFile reads a YAML knowledge base from path.
func LoadFile(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge file: %w", err)
	}
	return Parse(data)
}
