package services

import (
	"context"

	"blogapi/app/models"
	"blogapi/app/repositories"

	"github.com/google/uuid"
)

// CommentService handles business logic for comments nested in posts.
//
// Edits and deletes address a comment by its bare ID and scan every post in
// store order, so they cost O(total comments). When two posts hold the same
// comment ID the first post wins.
type CommentService struct {
	postRepo repositories.PostRepository
	newID    func() string
}

// NewCommentService creates a new CommentService
func NewCommentService(postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		postRepo: postRepo,
		newID:    uuid.NewString,
	}
}

// AddComment validates the payload and appends a comment to the post.
// It returns the whole updated post.
func (s *CommentService) AddComment(ctx context.Context, postID string, in models.CommentInput) (*models.Post, error) {
	if s.postRepo == nil {
		return nil, ErrStoreUninitialized
	}
	if err := models.ValidateComment(in); err != nil {
		return nil, err
	}

	post, err := s.postRepo.Update(ctx, postID, func(p *models.Post) error {
		id := s.newID()
		for p.HasComment(id) {
			id = s.newID()
		}
		return p.AddComment(&models.Comment{
			ID:      id,
			Author:  in.Author,
			Content: in.Content,
		})
	})
	if err != nil {
		return nil, notFound(err, ErrPostNotFound)
	}
	return post, nil
}

// ListComments retrieves all comments for a post
func (s *CommentService) ListComments(ctx context.Context, postID string) ([]*models.Comment, error) {
	if s.postRepo == nil {
		return nil, ErrStoreUninitialized
	}
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, notFound(err, ErrPostNotFound)
	}
	return post.Comments, nil
}

// UpdateComment replaces the content of the first comment with the given ID.
// An empty string is accepted; a missing content field is not.
func (s *CommentService) UpdateComment(ctx context.Context, commentID string, in models.CommentContent) (*models.Comment, error) {
	if s.postRepo == nil {
		return nil, ErrStoreUninitialized
	}
	if err := models.ValidateCommentContent(in); err != nil {
		return nil, err
	}

	var updated *models.Comment
	_, err := s.postRepo.UpdateFirst(ctx, ownsComment(commentID), func(p *models.Post) error {
		c := p.Comments[p.CommentIndex(commentID)]
		c.Content = *in.Content
		updated = c
		return nil
	})
	if err != nil {
		return nil, notFound(err, ErrCommentNotFound)
	}
	return updated, nil
}

// DeleteComment removes the first comment with the given ID from its post
func (s *CommentService) DeleteComment(ctx context.Context, commentID string) error {
	if s.postRepo == nil {
		return ErrStoreUninitialized
	}
	_, err := s.postRepo.UpdateFirst(ctx, ownsComment(commentID), func(p *models.Post) error {
		return p.RemoveComment(commentID)
	})
	return notFound(err, ErrCommentNotFound)
}

func ownsComment(commentID string) func(*models.Post) bool {
	return func(p *models.Post) bool {
		return p.HasComment(commentID)
	}
}
