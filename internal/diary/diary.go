// Package diary loads long-form diary posts: markdown files whose
// front-matter tags each post with a mood.
package diary

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/chris-regnier/sunspot/internal/mood"
)

// ErrInvalidPost is returned for a post whose front-matter fails validation.
var ErrInvalidPost = errors.New("invalid diary post")

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Post is one diary post.
type Post struct {
	Slug    string    `json:"slug"`
	Title   string    `json:"title"`
	Date    time.Time `json:"date"`
	Mood    mood.Type `json:"mood"`
	Cover   string    `json:"cover,omitempty"`
	Tags    []string  `json:"tags,omitempty"`
	Excerpt string    `json:"excerpt,omitempty"`
	Body    string    `json:"-"`
}

type frontMatter struct {
	Title   string   `yaml:"title"`
	Date    string   `yaml:"date"`
	Mood    string   `yaml:"mood"`
	Cover   string   `yaml:"cover"`
	Tags    []string `yaml:"tags"`
	Excerpt string   `yaml:"excerpt"`
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Parse reads one post. slug identifies it in errors and output.
func Parse(slug string, r io.Reader) (Post, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(r, &fm)
	if err != nil {
		return Post{}, fmt.Errorf("%w: %s: parsing front-matter: %v", ErrInvalidPost, slug, err)
	}

	if strings.TrimSpace(fm.Title) == "" {
		return Post{}, fmt.Errorf("%w: %s: missing title", ErrInvalidPost, slug)
	}
	date, err := parseDate(fm.Date)
	if err != nil {
		return Post{}, fmt.Errorf("%w: %s: %v", ErrInvalidPost, slug, err)
	}

	m := mood.Sunny
	if fm.Mood != "" {
		m, err = mood.Parse(fm.Mood)
		if err != nil {
			return Post{}, fmt.Errorf("%w: %s: %v", ErrInvalidPost, slug, err)
		}
	}

	return Post{
		Slug:    slug,
		Title:   fm.Title,
		Date:    date,
		Mood:    m,
		Cover:   fm.Cover,
		Tags:    fm.Tags,
		Excerpt: fm.Excerpt,
		Body:    strings.TrimSpace(string(body)),
	}, nil
}

// Load walks dir for *.md posts and returns them newest first. Posts that
// fail to parse are skipped and logged.
func Load(dir string, logger *slog.Logger) ([]Post, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With("component", "diary")

	var posts []Post
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil // skip unreadable entries
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		rel, _ := filepath.Rel(dir, path)
		slug := strings.TrimSuffix(filepath.ToSlash(rel), ".md")

		f, err := os.Open(path)
		if err != nil {
			logger.Warn("skipping unreadable post", "path", path, "error", err)
			return nil
		}
		defer f.Close()

		p, err := Parse(slug, f)
		if err != nil {
			logger.Warn("skipping malformed post", "path", path, "error", err)
			return nil
		}
		posts = append(posts, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning diary directory: %w", err)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
	if posts == nil {
		posts = []Post{}
	}
	return posts, nil
}
