package knowledge

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ResponseSet is either a ResponseList or GroupedResponses.
type ResponseSet interface {
	responseSet()
}

// ResponseList is a flat set of candidate replies.
type ResponseList []string

// SubTopic pairs a sub-topic keyword with its candidate replies.
type SubTopic struct {
	Key       string
	Responses []string
}

// GroupedResponses is an ordered mapping of sub-topic keyword to replies.
type GroupedResponses []SubTopic

func (ResponseList) responseSet()     {}
func (GroupedResponses) responseSet() {}

// Topic is one knowledge-base grouping.
type Topic struct {
	Name      string
	Keywords  []string
	Responses ResponseSet
}

// Match describes a successful lookup. SubTopic is empty for flat topics.
type Match struct {
	Topic    string
	SubTopic string
	Text     string
}

// Base is an immutable, ordered collection of topics.
type Base struct {
	topics []Topic
	// masks[i] hides other topics' keywords that merely contain one of
	// topic i's keywords, so "machine learning" does not read as "hi".
	masks []*strings.Replacer
}

var ErrEmptyResponses = errors.New("empty response list")

// NewBase validates topics and returns a Base that owns a lowercased copy of
// them. Topic order is preserved and is the lookup order.
func NewBase(topics []Topic) (*Base, error) {
	if len(topics) == 0 {
		return nil, errors.New("knowledge base has no topics")
	}

	owned := make([]Topic, 0, len(topics))
	seen := make(map[string]bool, len(topics))
	for _, t := range topics {
		if t.Name == "" {
			return nil, errors.New("topic without a name")
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("duplicate topic %q", t.Name)
		}
		seen[t.Name] = true
		if len(t.Keywords) == 0 {
			return nil, fmt.Errorf("topic %q has no keywords", t.Name)
		}
		for _, kw := range t.Keywords {
			if strings.TrimSpace(kw) == "" {
				return nil, fmt.Errorf("topic %q has a blank keyword", t.Name)
			}
		}

		copied := Topic{Name: t.Name, Keywords: lowerAll(t.Keywords)}
		switch rs := t.Responses.(type) {
		case ResponseList:
			if len(rs) == 0 {
				return nil, fmt.Errorf("topic %q: %w", t.Name, ErrEmptyResponses)
			}
			copied.Responses = append(ResponseList(nil), rs...)
		case GroupedResponses:
			if len(rs) == 0 {
				return nil, fmt.Errorf("topic %q has no sub-topics", t.Name)
			}
			groups := make(GroupedResponses, 0, len(rs))
			for _, sub := range rs {
				if strings.TrimSpace(sub.Key) == "" {
					return nil, fmt.Errorf("topic %q has a sub-topic without a key", t.Name)
				}
				if len(sub.Responses) == 0 {
					return nil, fmt.Errorf("topic %q sub-topic %q: %w", t.Name, sub.Key, ErrEmptyResponses)
				}
				groups = append(groups, SubTopic{
					Key:       strings.ToLower(sub.Key),
					Responses: append([]string(nil), sub.Responses...),
				})
			}
			copied.Responses = groups
		default:
			return nil, fmt.Errorf("topic %q has no responses", t.Name)
		}
		owned = append(owned, copied)
	}

	return &Base{topics: owned, masks: buildMasks(owned)}, nil
}

// buildMasks collects, per topic, the keywords of the other topics that
// contain one of its own keywords without being one.
func buildMasks(topics []Topic) []*strings.Replacer {
	masks := make([]*strings.Replacer, len(topics))
	for i, t := range topics {
		own := make(map[string]bool, len(t.Keywords))
		for _, kw := range t.Keywords {
			own[kw] = true
		}

		var pairs []string
		for j, other := range topics {
			if j == i {
				continue
			}
			for _, kw := range other.Keywords {
				if !own[kw] && ContainsAny(kw, t.Keywords) {
					pairs = append(pairs, kw, "\x00")
				}
			}
		}
		if len(pairs) > 0 {
			masks[i] = strings.NewReplacer(pairs...)
		}
	}
	return masks
}

// Topics returns the topic names in lookup order.
func (b *Base) Topics() []string {
	names := make([]string, len(b.topics))
	for i, t := range b.topics {
		names[i] = t.Name
	}
	return names
}

// Topic returns the named topic.
func (b *Base) Topic(name string) (Topic, bool) {
	for _, t := range b.topics {
		if t.Name == name {
			return t, true
		}
	}
	return Topic{}, false
}

// Lookup walks the topics in order. A topic whose keyword appears in the
// message but which resolves no sub-topic does not stop the walk.
func (b *Base) Lookup(message string) (Match, bool) {
	lower := strings.ToLower(message)
	for i, t := range b.topics {
		text := lower
		if b.masks[i] != nil {
			text = b.masks[i].Replace(lower)
		}
		if !ContainsAny(text, t.Keywords) {
			continue
		}
		if m, ok := t.resolve(lower); ok {
			return m, true
		}
	}
	return Match{}, false
}

func (t Topic) resolve(lower string) (Match, bool) {
	switch rs := t.Responses.(type) {
	case ResponseList:
		return Match{Topic: t.Name, Text: Choose(rs)}, true
	case GroupedResponses:
		if sub, ok := rs.find(lower); ok {
			return Match{Topic: t.Name, SubTopic: sub.Key, Text: Choose(sub.Responses)}, true
		}
	}
	return Match{}, false
}

// find tries whole sub-topic keys first, then the individual words of each
// key that are longer than two characters.
func (g GroupedResponses) find(lower string) (SubTopic, bool) {
	for _, sub := range g {
		if strings.Contains(lower, sub.Key) {
			return sub, true
		}
	}
	for _, sub := range g {
		for _, word := range strings.Fields(sub.Key) {
			if len(word) > 2 && strings.Contains(lower, word) {
				return sub, true
			}
		}
	}
	return SubTopic{}, false
}

// ContainsAny reports whether text contains any keyword as a substring.
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Choose picks one candidate uniformly at random. It panics on an empty slice;
// NewBase guarantees that never happens for knowledge data.
func Choose(candidates []string) string {
	return candidates[ChooseIndex(len(candidates))]
}

// ChooseIndex returns a uniform index in [0, n).
func ChooseIndex(n int) int {
	return rand.Intn(n)
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
