// Package sequence issues monotonically increasing numeric ids per named counter.
// Each call is a single atomic increment in a shared store, so several server
// instances can issue ids for the same name without collisions.
package sequence

import (
	"context"
	"strings"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/pkg/observability"
)

// PostsSequence numbers posts
const PostsSequence = "posts_sequence"

// Generator defines the interface for sequence generators.
// A counter that does not exist yet starts at 0, so its first value is 1.
type Generator interface {
	Next(ctx context.Context, name string) (int64, error)
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return models.InvalidInput("sequence name is required")
	}
	return nil
}

func issued(name string) {
	observability.SequenceValuesIssued.WithLabelValues(name).Inc()
}
