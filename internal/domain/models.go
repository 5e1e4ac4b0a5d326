package domain

import "time"

// Post is one card in the post grid
type Post struct {
	ID        string    `yaml:"id"`
	Title     string    `yaml:"title"`
	Slug      string    `yaml:"slug"` // derived from Title when empty
	Author    string    `yaml:"author"`
	Body      string    `yaml:"body"`
	Tags      []string  `yaml:"tags"`
	Published time.Time `yaml:"published"`
}

// Summary returns the first line of the body, cut to max runes
func (p Post) Summary(max int) string {
	line := p.Body
	for i, r := range line {
		if r == '\n' {
			line = line[:i]
			break
		}
	}
	runes := []rune(line)
	if max > 0 && len(runes) > max {
		if max <= 1 {
			return string(runes[:max])
		}
		return string(runes[:max-1]) + "…"
	}
	return line
}

// PageCount returns how many pages of size pageSize are needed for n items
func PageCount(n, pageSize int) int {
	if n <= 0 || pageSize <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}
