package models

import "time"

// Post represents a blog post with its comments.
type Post struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Author          string     `json:"author"`
	PublicationDate time.Time  `json:"publicationDate"`
	ReadTime        int        `json:"readTime"`
	Content         string     `json:"content"`
	Tags            Tags       `json:"tags"`
	Likes           int        `json:"likes"`
	Comments        []*Comment `json:"comments"`
}

// Comment represents a comment owned by a single post.
type Comment struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

// PostInput is the payload accepted when creating a post.
type PostInput struct {
	Title   string `json:"title" validate:"required"`
	Author  string `json:"author" validate:"required"`
	Content string `json:"content" validate:"required"`
	Tags    Tags   `json:"tags"`
}

// PostPatch is a partial update. Nil fields are left untouched.
type PostPatch struct {
	Title   *string      `json:"title"`
	Author  *string      `json:"author"`
	Content *string      `json:"content"`
	Tags    OptionalTags `json:"tags"`
}

// CommentInput is the payload accepted when adding a comment.
type CommentInput struct {
	Author  string `json:"author" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// CommentContent is the payload accepted when editing a comment.
type CommentContent struct {
	Content *string `json:"content"`
}
