package services

import (
	"context"
	"fmt"
	"time"

	"blogapi/app/models"
	"blogapi/app/repositories"

	"github.com/google/uuid"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo repositories.PostRepository
	now      func() time.Time
	newID    func() string
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// ListPosts returns every post in store order
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	if s.postRepo == nil {
		return nil, ErrStoreUninitialized
	}
	return s.postRepo.List(ctx)
}

// GetPost retrieves a post by ID with its comments
func (s *PostService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	if s.postRepo == nil {
		return nil, ErrStoreUninitialized
	}
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrPostNotFound)
	}
	return post, nil
}

// CreatePost validates the payload and appends a new post
func (s *PostService) CreatePost(ctx context.Context, in models.PostInput) (*models.Post, error) {
	if s.postRepo == nil {
		return nil, ErrStoreUninitialized
	}
	if err := models.ValidatePost(in); err != nil {
		return nil, err
	}

	id, err := s.freshID(ctx)
	if err != nil {
		return nil, err
	}
	post := models.NewPost(in, s.now())
	post.ID = id

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// UpdatePost merges the supplied fields over the stored post
func (s *PostService) UpdatePost(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error) {
	if s.postRepo == nil {
		return nil, ErrStoreUninitialized
	}
	post, err := s.postRepo.Update(ctx, id, func(p *models.Post) error {
		p.ApplyPatch(patch)
		return nil
	})
	if err != nil {
		return nil, notFound(err, ErrPostNotFound)
	}
	return post, nil
}

// DeletePost deletes a post and all its comments
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	if s.postRepo == nil {
		return ErrStoreUninitialized
	}
	return notFound(s.postRepo.Delete(ctx, id), ErrPostNotFound)
}

// SearchPosts matches query against title and content, ignoring case.
// An empty query matches nothing.
func (s *PostService) SearchPosts(ctx context.Context, query string) ([]*models.Post, error) {
	if query == "" {
		return []*models.Post{}, nil
	}
	return s.selectPosts(ctx, func(p *models.Post) bool {
		return p.MatchesQuery(query)
	})
}

// FilterPosts returns posts by exact author and/or tag. With neither
// criterion it returns nothing.
func (s *PostService) FilterPosts(ctx context.Context, author, tag string) ([]*models.Post, error) {
	if author == "" && tag == "" {
		return []*models.Post{}, nil
	}
	return s.selectPosts(ctx, func(p *models.Post) bool {
		return p.MatchesFilter(author, tag)
	})
}

// LikePost adds a like, or removes one when unlike is set, and returns the new count
func (s *PostService) LikePost(ctx context.Context, id string, unlike bool) (int, error) {
	if s.postRepo == nil {
		return 0, ErrStoreUninitialized
	}
	var likes int
	_, err := s.postRepo.Update(ctx, id, func(p *models.Post) error {
		likes = p.Like(unlike)
		return nil
	})
	if err != nil {
		return 0, notFound(err, ErrPostNotFound)
	}
	return likes, nil
}

func (s *PostService) selectPosts(ctx context.Context, keep func(*models.Post) bool) ([]*models.Post, error) {
	posts, err := s.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	matched := []*models.Post{}
	for _, p := range posts {
		if keep(p) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// freshID returns an ID not used by any stored post
func (s *PostService) freshID(ctx context.Context) (string, error) {
	for {
		id := s.newID()
		taken, err := s.postRepo.Exists(ctx, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
}
