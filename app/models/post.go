package models

import (
	"errors"
	"strings"
	"time"
	"unicode/utf16"
)

// charsPerReadUnit is the number of content characters counted as one unit of read time.
const charsPerReadUnit = 200

// ReadTime returns ceil(len(content)/200), counting UTF-16 code units.
func ReadTime(content string) int {
	n := len(utf16.Encode([]rune(content)))
	return (n + charsPerReadUnit - 1) / charsPerReadUnit
}

// NewPost builds a post from a validated payload. The caller assigns the ID.
func NewPost(in PostInput, now time.Time) *Post {
	tags := in.Tags
	if tags == nil {
		tags = Tags{}
	}
	return &Post{
		Title:           in.Title,
		Author:          in.Author,
		PublicationDate: now,
		ReadTime:        ReadTime(in.Content),
		Content:         in.Content,
		Tags:            tags,
		Likes:           0,
		Comments:        []*Comment{},
	}
}

// ApplyPatch merges the fields present in patch. ReadTime follows Content.
func (p *Post) ApplyPatch(patch PostPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Author != nil {
		p.Author = *patch.Author
	}
	if patch.Content != nil {
		p.Content = *patch.Content
		p.ReadTime = ReadTime(p.Content)
	}
	if patch.Tags.Set {
		p.Tags = patch.Tags.Values
	}
}

// Like adds one like, or removes one when unlike is set. Likes never go below zero.
func (p *Post) Like(unlike bool) int {
	if unlike {
		if p.Likes > 0 {
			p.Likes--
		}
	} else {
		p.Likes++
	}
	return p.Likes
}

// MatchesQuery reports whether title or content contains query, ignoring case.
func (p *Post) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Content), q)
}

// MatchesFilter applies the author and tag criteria. Empty criteria are ignored.
func (p *Post) MatchesFilter(author, tag string) bool {
	if author != "" && p.Author != author {
		return false
	}
	if tag != "" && !p.Tags.Contains(tag) {
		return false
	}
	return true
}

// AddComment appends a comment to the post
func (p *Post) AddComment(comment *Comment) error {
	if comment == nil {
		return errors.New("comment cannot be nil")
	}
	p.Comments = append(p.Comments, comment)
	return nil
}

// CommentIndex returns the position of the comment with the given id, or -1.
func (p *Post) CommentIndex(commentID string) int {
	for i, c := range p.Comments {
		if c.ID == commentID {
			return i
		}
	}
	return -1
}

// HasComment reports whether the post owns a comment with the given id.
func (p *Post) HasComment(commentID string) bool {
	return p.CommentIndex(commentID) >= 0
}

// RemoveComment removes a comment from the post, keeping the order of the rest.
func (p *Post) RemoveComment(commentID string) error {
	i := p.CommentIndex(commentID)
	if i < 0 {
		return errors.New("comment not found")
	}
	p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
	return nil
}

// Clone returns a deep copy of the post.
func (p *Post) Clone() *Post {
	cp := *p
	cp.Tags = append(Tags{}, p.Tags...)
	cp.Comments = make([]*Comment, len(p.Comments))
	for i, c := range p.Comments {
		cc := *c
		cp.Comments[i] = &cc
	}
	return &cp
}
