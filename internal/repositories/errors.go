package repositories

import (
	"errors"
	"fmt"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// mapError translates driver errors into the model sentinels
func mapError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", what, models.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", what, models.ErrAlreadyExists)
	default:
		return err
	}
}
