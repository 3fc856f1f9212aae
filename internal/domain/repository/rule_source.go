package repository

import (
	"context"

	"github.com/bnema/blockrules/internal/domain/entity"
)

// RuleSourceRepository defines operations for filter list source persistence.
type RuleSourceRepository interface {
	// Save creates or updates a source.
	Save(ctx context.Context, source *entity.RuleSource) error

	// FindByID retrieves a source by its ID. Returns nil when it does not exist.
	FindByID(ctx context.Context, id entity.RuleSourceID) (*entity.RuleSource, error)

	// FindByName retrieves a source by its unique name. Returns nil when it does not exist.
	FindByName(ctx context.Context, name string) (*entity.RuleSource, error)

	// GetAll retrieves all sources ordered by name.
	GetAll(ctx context.Context) ([]*entity.RuleSource, error)

	// Delete removes a source and its tracker infos.
	Delete(ctx context.Context, id entity.RuleSourceID) error

	// ReplaceTrackerInfos swaps the tracker infos recorded for a source.
	ReplaceTrackerInfos(ctx context.Context, id entity.RuleSourceID, infos []entity.TrackerInfo) error

	// GetTrackerInfos retrieves the tracker infos of a source ordered by domain.
	GetTrackerInfos(ctx context.Context, id entity.RuleSourceID) ([]entity.TrackerInfo, error)
}
