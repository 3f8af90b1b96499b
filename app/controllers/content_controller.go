package controllers

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/gearbay/app/models"
	"github.com/shashiranjanraj/gearbay/app/repositories"
	"github.com/shashiranjanraj/gearbay/pkg/bind"
	"github.com/shashiranjanraj/gearbay/pkg/cache"
	"github.com/shashiranjanraj/gearbay/pkg/middleware"
	"github.com/shashiranjanraj/gearbay/pkg/response"
)

const contentCacheTTL = 5 * time.Minute

// ContentController serves the review/blog/team surfaces. These are
// read-mostly, so list reads go through the cache.
type ContentController struct {
	content *repositories.ContentRepository
}

func NewContentController(content *repositories.ContentRepository) *ContentController {
	return &ContentController{content: content}
}

// Reviews handles GET /reviews.
func (c *ContentController) Reviews(w http.ResponseWriter, r *http.Request) {
	var cached []models.Review
	if cache.Get("content:reviews", &cached) {
		response.Success(w, cached)
		return
	}

	reviews, err := c.content.Reviews(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not list reviews")
		return
	}

	cache.Set("content:reviews", reviews, contentCacheTTL)
	response.Success(w, reviews)
}

type addReviewRequest struct {
	Name    string `json:"name"    validate:"required,max=120"`
	Rating  int    `json:"rating"  validate:"required,gte=1,max=5"`
	Comment string `json:"comment" validate:"nullable,max=2000"`
}

// AddReview handles POST /reviews. The reviewer identity comes from the
// verified claims.
func (c *ContentController) AddReview(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var body addReviewRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	review, err := c.content.AddReview(r.Context(), models.Review{
		Email:     claims.Email,
		Name:      body.Name,
		Rating:    body.Rating,
		Comment:   body.Comment,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not save review")
		return
	}

	cache.Del("content:reviews")
	response.Created(w, review)
}

// Blogs handles GET /blogs.
func (c *ContentController) Blogs(w http.ResponseWriter, r *http.Request) {
	var cached []models.BlogPost
	if cache.Get("content:blogs", &cached) {
		response.Success(w, cached)
		return
	}

	blogs, err := c.content.Blogs(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not list blog posts")
		return
	}

	cache.Set("content:blogs", blogs, contentCacheTTL)
	response.Success(w, blogs)
}

// Team handles GET /team.
func (c *ContentController) Team(w http.ResponseWriter, r *http.Request) {
	var cached []models.TeamMember
	if cache.Get("content:team", &cached) {
		response.Success(w, cached)
		return
	}

	team, err := c.content.Team(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not list team")
		return
	}

	cache.Set("content:team", team, contentCacheTTL)
	response.Success(w, team)
}
