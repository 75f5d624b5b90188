package mock

import (
	"context"
	"sync"

	"blogapi/app/models"
	"blogapi/app/repositories"
)

// PostRepository is a slice-backed PostRepository. It hands out copies so
// callers cannot mutate stored posts outside Update.
type PostRepository struct {
	posts []*models.Post
	mutex sync.RWMutex
}

var _ repositories.PostRepository = (*PostRepository)(nil)

func NewPostRepository() *PostRepository {
	return &PostRepository{}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = nil
}

func (m *PostRepository) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.posts)
}

// PostRepository implementation
func (m *PostRepository) Create(ctx context.Context, post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.posts = append(m.posts, post.Clone())
	return nil
}

func (m *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, repositories.ErrNotFound
	}
	return m.posts[i].Clone(), nil
}

func (m *PostRepository) Exists(ctx context.Context, id string) (bool, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.indexOf(id) >= 0, nil
}

func (m *PostRepository) List(ctx context.Context) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := make([]*models.Post, 0, len(m.posts))
	for _, p := range m.posts {
		posts = append(posts, p.Clone())
	}
	return posts, nil
}

func (m *PostRepository) Update(ctx context.Context, id string, mutate func(*models.Post) error) (*models.Post, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, repositories.ErrNotFound
	}
	return m.apply(i, mutate)
}

func (m *PostRepository) UpdateFirst(ctx context.Context, match func(*models.Post) bool, mutate func(*models.Post) error) (*models.Post, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i, p := range m.posts {
		if match(p.Clone()) {
			return m.apply(i, mutate)
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *PostRepository) Delete(ctx context.Context, id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return repositories.ErrNotFound
	}
	m.posts = append(m.posts[:i], m.posts[i+1:]...)
	return nil
}

func (m *PostRepository) apply(i int, mutate func(*models.Post) error) (*models.Post, error) {
	next := m.posts[i].Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}
	m.posts[i] = next
	return next.Clone(), nil
}

func (m *PostRepository) indexOf(id string) int {
	for i, p := range m.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}
