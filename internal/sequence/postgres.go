package sequence

import (
	"context"
	"fmt"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"gorm.io/gorm"
)

const upsertCounterSQL = `INSERT INTO sequence_counters (name, value, created_at, updated_at) VALUES (?, 1, NOW(), NOW()) ON CONFLICT (name) DO UPDATE SET value = sequence_counters.value + 1, updated_at = NOW() RETURNING value`

// PostgresGenerator implements Generator on a sequence_counters table
type PostgresGenerator struct {
	db *gorm.DB
}

// NewPostgresGenerator creates a new PostgresGenerator
func NewPostgresGenerator(db *gorm.DB) *PostgresGenerator {
	return &PostgresGenerator{db: db}
}

// Migrate creates the sequence_counters table if needed
func (g *PostgresGenerator) Migrate(ctx context.Context) error {
	return g.db.WithContext(ctx).AutoMigrate(&models.SequenceCounter{})
}

// Next runs one upsert statement; the row lock taken by ON CONFLICT serializes concurrent callers
func (g *PostgresGenerator) Next(ctx context.Context, name string) (int64, error) {
	if err := checkName(name); err != nil {
		return 0, err
	}

	var value int64
	if err := g.db.WithContext(ctx).Raw(upsertCounterSQL, name).Scan(&value).Error; err != nil {
		return 0, fmt.Errorf("failed to advance sequence %q: %w", name, err)
	}

	issued(name)
	return value, nil
}
