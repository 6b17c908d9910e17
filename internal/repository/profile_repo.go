package repository

import (
	"context"

	"github.com/pokojowo/match-service/internal/db"
	"github.com/pokojowo/match-service/internal/matching"

	"gorm.io/gorm"
)

// ProfileRepository provides data access for matchable profiles. It is the
// candidate-retrieval collaborator of the matching engine: the engine only
// scores what this repository hands it.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new repository bound to the given DB connection.
func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// GetView loads one user's matchable profile as an engine ProfileView.
//
// Behavior:
//   - Joins the owning user row for the optional gender attribute.
//   - Returns gorm.ErrRecordNotFound when the user has no complete profile.
//
// Example:
//
//	repo.GetView(ctx, 42)
func (r *ProfileRepository) GetView(ctx context.Context, userID uint64) (matching.ProfileView, error) {
	var profile db.Profile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? AND complete = ?", userID, true).
		First(&profile).Error
	if err != nil {
		return matching.ProfileView{}, err
	}
	return profile.ToView(profile.User.Gender), nil
}

// ListCandidateViews returns the candidate pool for a viewer: every active
// user with a complete profile, excluding the viewer. Ordered by user ID so
// the pool itself is deterministic before ranking.
//
// Example:
//
//	repo.ListCandidateViews(ctx, 42, 500)
func (r *ProfileRepository) ListCandidateViews(ctx context.Context, viewerID uint64, limit int) ([]matching.ProfileView, error) {
	var profiles []db.Profile
	query := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN users u ON u.id = profiles.user_id AND u.active = ?", true).
		Where("profiles.complete = ? AND profiles.user_id <> ?", true, viewerID).
		Order("profiles.user_id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}

	views := make([]matching.ProfileView, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, p.ToView(p.User.Gender))
	}
	return views, nil
}

// CountCandidates returns how many candidates exist for a viewer, before
// any deal-breaker filtering. Used for dashboard stats alongside the cached
// compatible-match count.
func (r *ProfileRepository) CountCandidates(ctx context.Context, viewerID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("profiles").
		Joins("JOIN users u ON u.id = profiles.user_id AND u.active = ?", true).
		Where("profiles.complete = ? AND profiles.user_id <> ?", true, viewerID).
		Count(&count).Error
	return count, err
}
