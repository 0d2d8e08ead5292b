package repository

import (
	"context"
	"time"

	"linktrack/internal/config"
	"linktrack/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// MySQLRepository handles MySQL operations
type MySQLRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a new MySQL repository
func NewMySQLRepository(cfg *config.MySQLConfig) *MySQLRepository {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	// Auto migrate tables
	if err := db.AutoMigrate(&model.AffiliateLink{}, &model.Visitor{}, &model.Click{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLRepository{db: db}
}

// GetDB returns the GORM DB instance
func (r *MySQLRepository) GetDB() *gorm.DB {
	return r.db
}

// CreateLink saves an affiliate link to MySQL
func (r *MySQLRepository) CreateLink(ctx context.Context, link *model.AffiliateLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// GetLinkByToken retrieves an affiliate link by token. Availability
// (active, unexpired) is the caller's concern; soft-deleted links are
// excluded by gorm.
func (r *MySQLRepository) GetLinkByToken(ctx context.Context, token string) (*model.AffiliateLink, error) {
	var link model.AffiliateLink
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// TokenExists checks if a token is already registered
func (r *MySQLRepository) TokenExists(ctx context.Context, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.AffiliateLink{}).
		Where("token = ?", token).
		Count(&count).Error
	return count > 0, err
}

// ListTokens returns all registered tokens, used to warm the bloom filter
// at startup
func (r *MySQLRepository) ListTokens(ctx context.Context) ([]string, error) {
	var tokens []string
	err := r.db.WithContext(ctx).
		Model(&model.AffiliateLink{}).
		Pluck("token", &tokens).Error
	return tokens, err
}

// DeactivateLink flips is_active off for a token and returns the number of
// affected rows. Links are never hard-deleted: click history must survive
// link lifecycle changes.
func (r *MySQLRepository) DeactivateLink(ctx context.Context, token string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.AffiliateLink{}).
		Where("token = ?", token).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

// HasClick checks whether any prior click exists for the (link, visitor)
// pair
func (r *MySQLRepository) HasClick(ctx context.Context, linkID int64, visitorID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Click{}).
		Where("link_id = ? AND visitor_id = ?", linkID, visitorID).
		Count(&count).Error
	return count > 0, err
}

// UpsertVisitor creates the visitor row or refreshes its last-seen fields
func (r *MySQLRepository) UpsertVisitor(ctx context.Context, visitor *model.Visitor) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_seen_at", "last_link_id", "last_click_at"}),
		}).
		Create(visitor).Error
}

// CreateClick appends an immutable click record
func (r *MySQLRepository) CreateClick(ctx context.Context, click *model.Click) error {
	return r.db.WithContext(ctx).Create(click).Error
}

// IncrementClickCounts bumps the link's denormalized counters with an
// atomic SQL expression, never a read-modify-write round trip, so
// concurrent clicks on the same link cannot lose increments.
func (r *MySQLRepository) IncrementClickCounts(ctx context.Context, linkID int64, unique bool) error {
	updates := map[string]interface{}{
		"click_count": gorm.Expr("click_count + ?", 1),
	}
	if unique {
		updates["unique_click_count"] = gorm.Expr("unique_click_count + ?", 1)
	}

	return r.db.WithContext(ctx).
		Model(&model.AffiliateLink{}).
		Where("id = ?", linkID).
		UpdateColumns(updates).Error
}

// GetClicks retrieves recent clicks for a link
func (r *MySQLRepository) GetClicks(ctx context.Context, linkID int64, limit int) ([]model.Click, error) {
	var clicks []model.Click
	query := r.db.WithContext(ctx).
		Where("link_id = ?", linkID).
		Order("clicked_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&clicks).Error
	return clicks, err
}

// GetTotalLinksCount returns the total count of registered links
func (r *MySQLRepository) GetTotalLinksCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.AffiliateLink{}).Count(&count).Error
	return count, err
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
