package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/sparechange/roundup/internal/pkg/database"
	"github.com/sparechange/roundup/internal/pkg/models"
)

// DonationRepository implements the donations.DonationRepo interface backed
// by PostgreSQL with a Redis read-through cache for monthly totals
type DonationRepository struct {
	cfg   *models.Config
	db    *sqlx.DB
	cache *database.RedisClient
}

// NewDonationRepository creates a new donation repository instance
func NewDonationRepository(cfg *models.Config, db *sqlx.DB, cache *database.RedisClient) *DonationRepository {
	return &DonationRepository{
		cfg:   cfg,
		db:    db,
		cache: cache,
	}
}
