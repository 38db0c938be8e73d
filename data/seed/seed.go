// Package seed fills the blog post collection with generated documents for
// local development and integration tests.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/ncobase/blogpost/data/repository"
	"github.com/ncobase/blogpost/structs"
)

var (
	firstNames = []string{"Ada", "Alan", "Barbara", "Dennis", "Edsger", "Grace", "Ken", "Margaret", "Niklaus", "Radia"}
	lastNames  = []string{"Hopper", "Knuth", "Lamport", "Liskov", "Lovelace", "Perlman", "Pike", "Ritchie", "Thompson", "Turing"}
	words      = []string{
		"actor", "buffer", "cache", "channel", "cluster", "commit", "daemon", "field", "graph", "index",
		"kernel", "lambda", "latency", "module", "packet", "query", "replica", "schema", "socket", "thread",
	}
)

// Generate builds n posts with random titles, content and authors. Created
// times are spread over the year before now.
func Generate(rnd *rand.Rand, n int, now time.Time) []*structs.BlogPost {
	posts := make([]*structs.BlogPost, 0, n)
	for i := 0; i < n; i++ {
		created := now.Add(-time.Duration(rnd.Int63n(int64(365 * 24 * time.Hour)))).UTC().Truncate(time.Millisecond)
		posts = append(posts, &structs.BlogPost{
			Title:   sentence(rnd, 3+rnd.Intn(4)),
			Content: paragraph(rnd, 2+rnd.Intn(4)),
			Author: structs.Author{
				FirstName: firstNames[rnd.Intn(len(firstNames))],
				LastName:  lastNames[rnd.Intn(len(lastNames))],
			},
			Created: &created,
		})
	}
	return posts
}

func sentence(rnd *rand.Rand, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = words[rnd.Intn(len(words))]
	}
	s := strings.Join(parts, " ")
	return strings.ToUpper(s[:1]) + s[1:]
}

func paragraph(rnd *rand.Rand, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = sentence(rnd, 6+rnd.Intn(6)) + "."
	}
	return strings.Join(parts, " ")
}

// Options controls Run.
type Options struct {
	Count int
	Drop  bool
	Seed  int64
}

// Run optionally drops the collection, then inserts Count generated posts.
func Run(ctx context.Context, repo repository.BlogPostRepository, opts Options) ([]*structs.BlogPost, error) {
	if opts.Drop {
		if err := repo.Drop(ctx); err != nil {
			return nil, err
		}
	}
	if opts.Count <= 0 {
		return nil, nil
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	posts := Generate(rand.New(rand.NewSource(seed)), opts.Count, time.Now())
	if err := repo.CreateMany(ctx, posts); err != nil {
		return nil, fmt.Errorf("failed to seed blog posts: %w", err)
	}
	return posts, nil
}
