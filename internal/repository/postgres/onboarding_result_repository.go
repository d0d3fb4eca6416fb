package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hustlexp/business/onboarding"
	"hustlexp/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// onboardingResultRow flattens the fields downstream queries filter on and
// keeps the full record as a JSONB snapshot. Rows are append-only: the
// repository exposes no update or delete on purpose.
type onboardingResultRow struct {
	ID                string         `gorm:"column:id;primaryKey"`
	UserID            uint           `gorm:"column:user_id;index;not null"`
	Version           string         `gorm:"column:version;not null"`
	FinalRole         string         `gorm:"column:final_role;not null"`
	CertaintyTier     string         `gorm:"column:certainty_tier;not null"`
	RoleWasOverridden bool           `gorm:"column:role_was_overridden"`
	CompletedAt       time.Time      `gorm:"column:completed_at;not null"`
	RecordJSON        datatypes.JSON `gorm:"column:record_json;type:jsonb"`
}

func (onboardingResultRow) TableName() string {
	return "onboarding_results"
}

type OnboardingResultRepository struct {
	DB *gorm.DB
}

var _ onboarding.ResultRepository = (*OnboardingResultRepository)(nil)

func NewOnboardingResultRepository(db *gorm.DB) *OnboardingResultRepository {
	return &OnboardingResultRepository{DB: db}
}

// Migrate creates the onboarding_results table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&onboardingResultRow{})
}

func (r *OnboardingResultRepository) Save(ctx context.Context, result domain.OnboardingResult) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal onboarding result: %w", err)
	}

	row := onboardingResultRow{
		ID:                result.ID,
		UserID:            result.UserID,
		Version:           result.Version,
		FinalRole:         string(result.FinalRole),
		CertaintyTier:     string(result.CertaintyTier),
		RoleWasOverridden: result.RoleWasOverridden,
		CompletedAt:       result.CompletedAt,
		RecordJSON:        datatypes.JSON(raw),
	}

	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to save onboarding result: %w", err)
	}

	return nil
}

func (r *OnboardingResultRepository) FindLatestByUserID(ctx context.Context, userID uint) (domain.OnboardingResult, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.OnboardingResult{}, false, fmt.Errorf("context error: %w", err)
	}

	var row onboardingResultRow
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.OnboardingResult{}, false, nil
	}
	if err != nil {
		return domain.OnboardingResult{}, false, fmt.Errorf("failed to query onboarding_results: %w", err)
	}

	result, err := rowToResult(row)
	if err != nil {
		return domain.OnboardingResult{}, false, err
	}

	return result, true, nil
}

func (r *OnboardingResultRepository) FindAllByUserID(ctx context.Context, userID uint) ([]domain.OnboardingResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []onboardingResultRow
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query onboarding_results: %w", err)
	}

	results := make([]domain.OnboardingResult, 0, len(rows))
	for _, row := range rows {
		result, err := rowToResult(row)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

func rowToResult(row onboardingResultRow) (domain.OnboardingResult, error) {
	var result domain.OnboardingResult
	if err := json.Unmarshal(row.RecordJSON, &result); err != nil {
		return domain.OnboardingResult{}, fmt.Errorf("failed to unmarshal record_json: %w", err)
	}
	return result, nil
}
