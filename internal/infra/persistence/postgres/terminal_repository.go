// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/repository"
	"timeclock/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// terminalRepository implements the repository.TerminalRepository interface.
type terminalRepository struct {
	db *gorm.DB
}

// NewTerminalRepository is the constructor for terminalRepository.
func NewTerminalRepository(db *gorm.DB) repository.TerminalRepository {
	return &terminalRepository{
		db: db,
	}
}

// ListActive retrieves every terminal the poller should visit, in a stable
// order so fleet passes always walk the same sequence.
func (repo *terminalRepository) ListActive(ctx context.Context) ([]*entity.Terminal, error) {
	var terminalModels []*model.TerminalModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&terminalModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active terminals")
	}

	terminals := make([]*entity.Terminal, 0, len(terminalModels))
	for _, terminalM := range terminalModels {
		terminals = append(terminals, toTerminalDomain(terminalM))
	}

	return terminals, nil
}

// CountActive returns the number of terminals currently in rotation.
func (repo *terminalRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.TerminalModel{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active terminals")
	}

	return count, nil
}

// UpdateLastSync stamps the terminal's last successful punch fetch.
func (repo *terminalRepository) UpdateLastSync(ctx context.Context, terminalID uuid.UUID, syncedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TerminalModel{}).
		Where("id = ?", terminalID).
		Update("last_sync_at", syncedAt)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update last sync")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTerminalNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTerminalDomain converts a GORM TerminalModel to a domain Terminal entity.
func toTerminalDomain(data *model.TerminalModel) *entity.Terminal {
	if data == nil {
		return nil
	}

	return &entity.Terminal{
		ID:         data.ID,
		Name:       data.Name,
		IPAddress:  data.IPAddress,
		Port:       data.Port,
		Family:     entity.TerminalFamily(data.Family),
		OfficeID:   data.OfficeID,
		IsActive:   data.IsActive,
		LastSyncAt: data.LastSyncAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
