package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/gearbay/app/models"
	"github.com/shashiranjanraj/gearbay/pkg/store"
)

// ContentRepository handles the read-mostly reviews, blogs, and team
// collections.
type ContentRepository struct {
	reviews *store.Collection
	blogs   *store.Collection
	team    *store.Collection
}

func NewContentRepository(db *store.DB) *ContentRepository {
	return &ContentRepository{
		reviews: db.Collection("reviews"),
		blogs:   db.Collection("blogs"),
		team:    db.Collection("team"),
	}
}

// Reviews returns every review.
func (r *ContentRepository) Reviews(ctx context.Context) ([]models.Review, error) {
	reviews := []models.Review{}
	if err := r.reviews.Find(ctx, bson.M{}, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// AddReview stores a new review.
func (r *ContentRepository) AddReview(ctx context.Context, review models.Review) (models.Review, error) {
	id, err := r.reviews.InsertOne(ctx, review)
	if err != nil {
		return models.Review{}, err
	}
	if inserted, ok := id.(primitive.ObjectID); ok {
		review.ID = inserted
	}
	return review, nil
}

// Blogs returns every blog post.
func (r *ContentRepository) Blogs(ctx context.Context) ([]models.BlogPost, error) {
	blogs := []models.BlogPost{}
	if err := r.blogs.Find(ctx, bson.M{}, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// Team returns every team member.
func (r *ContentRepository) Team(ctx context.Context) ([]models.TeamMember, error) {
	team := []models.TeamMember{}
	if err := r.team.Find(ctx, bson.M{}, &team); err != nil {
		return nil, err
	}
	return team, nil
}
