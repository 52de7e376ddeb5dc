package export

import "strings"

// Slug turns a topic into a short filename-safe fragment.
func Slug(topic string) string {
	topic = strings.ToLower(strings.TrimSpace(topic))
	topic = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		}
		return -1
	}, topic)
	if len(topic) > 20 {
		topic = topic[:20]
	}
	if topic == "" {
		topic = "topic"
	}
	return topic
}
