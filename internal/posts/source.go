// Package posts loads the posts shown in the grid and keeps them fresh.
package posts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"postgrid/internal/domain"
)

// ErrUnsupportedFormat is returned for files that are neither YAML nor JSON
var ErrUnsupportedFormat = errors.New("unsupported posts file format")

// Source describes where posts come from: a file, or generated demo posts
// when Path is empty.
type Source struct {
	Path string
	Demo int
}

// Name describes the source for the status bar and logs
func (s Source) Name() string {
	if s.Path == "" {
		return fmt.Sprintf("demo (%d posts)", s.Demo)
	}
	return filepath.Base(s.Path)
}

// Load reads the posts from the source
func (s Source) Load() ([]domain.Post, error) {
	if s.Path == "" {
		return Demo(s.Demo), nil
	}
	return Load(s.Path)
}

// Load reads posts from a YAML or JSON file
func Load(path string) ([]domain.Post, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read posts file: %w", err)
	}

	posts, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return posts, nil
}

// Decode parses posts from YAML (or JSON, which yaml.v3 also reads). The
// document is either a list of posts or a mapping with a "posts" list.
func Decode(data []byte) ([]domain.Post, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return []domain.Post{}, nil
	}

	var posts []domain.Post
	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&posts); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		var wrapped struct {
			Posts []domain.Post `yaml:"posts"`
		}
		if err := root.Decode(&wrapped); err != nil {
			return nil, err
		}
		posts = wrapped.Posts
	default:
		return nil, fmt.Errorf("expected a list of posts at line %d", root.Line)
	}

	return normalize(posts), nil
}

// normalize fills in IDs and slugs the file left out
func normalize(posts []domain.Post) []domain.Post {
	if posts == nil {
		return []domain.Post{}
	}
	for i := range posts {
		if posts[i].ID == "" {
			posts[i].ID = fmt.Sprintf("post-%d", i+1)
		}
		if posts[i].Slug == "" && posts[i].Title != "" {
			posts[i].Slug = slug.Make(posts[i].Title)
		}
	}
	return posts
}

var (
	demoAdjectives = []string{"Quiet", "Practical", "Hidden", "Small", "Honest", "Fast", "Patient", "Curious"}
	demoNouns      = []string{"Interfaces", "Terminals", "Channels", "Gardens", "Deploys", "Caches", "Tables", "Maps"}
	demoAuthors    = []string{"Ada", "Grace", "Ken", "Rob", "Barbara", "Linus", "Radia", "Dennis"}
	demoTags       = []string{"go", "tui", "notes", "howto", "design", "ops"}
)

// Demo returns n deterministic demo posts
func Demo(n int) []domain.Post {
	if n <= 0 {
		return []domain.Post{}
	}
	base := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	posts := make([]domain.Post, 0, n)
	for i := 0; i < n; i++ {
		adj := demoAdjectives[i%len(demoAdjectives)]
		noun := demoNouns[(i/len(demoAdjectives))%len(demoNouns)]
		title := fmt.Sprintf("%s %s #%d", adj, noun, i+1)
		posts = append(posts, domain.Post{
			ID:     fmt.Sprintf("demo-%03d", i+1),
			Title:  title,
			Slug:   slug.Make(title),
			Author: demoAuthors[i%len(demoAuthors)],
			Body: fmt.Sprintf("Notes on %s %s.\n\nThis is demo post number %d. It exists so the grid has something to page through.",
				strings.ToLower(adj), strings.ToLower(noun), i+1),
			Tags:      []string{demoTags[i%len(demoTags)], demoTags[(i+2)%len(demoTags)]},
			Published: base.AddDate(0, 0, i),
		})
	}
	return posts
}
