package repositories

import (
	"context"
	"errors"
	"sync"

	"blogapi/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB.
//
// Posts live under post:<seq> so iteration follows insertion order, and
// postid:<id> points back at that key. Writes are serialized by mu.
type BadgerPostRepository struct {
	db *badger.DB
	mu sync.Mutex
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create appends a new post. The post must already carry its ID.
func (r *BadgerPostRepository) Create(ctx context.Context, post *models.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.db.Update(func(txn *badger.Txn) error {
		seq, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		key := postKey(seq)
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(indexKey(post.ID), key)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var post *models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		_, p, err := loadPost(txn, id)
		post = p
		return err
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Exists reports whether a post with the given ID is stored.
func (r *BadgerPostRepository) Exists(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var found bool
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(indexKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}

// List retrieves every post in insertion order
func (r *BadgerPostRepository) List(ctx context.Context) ([]*models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	posts := []*models.Post{}
	err := r.db.View(func(txn *badger.Txn) error {
		return eachPost(txn, func(_ []byte, post *models.Post) (bool, error) {
			posts = append(posts, post)
			return false, nil
		})
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update loads the post, applies mutate and stores the result in place.
// If mutate fails nothing is written.
func (r *BadgerPostRepository) Update(ctx context.Context, id string, mutate func(*models.Post) error) (*models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var post *models.Post
	err := r.db.Update(func(txn *badger.Txn) error {
		key, p, err := loadPost(txn, id)
		if err != nil {
			return err
		}
		if err := mutate(p); err != nil {
			return err
		}
		post = p
		return storePost(txn, key, p)
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// UpdateFirst scans posts in insertion order and mutates the first match.
func (r *BadgerPostRepository) UpdateFirst(ctx context.Context, match func(*models.Post) bool, mutate func(*models.Post) error) (*models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var post *models.Post
	err := r.db.Update(func(txn *badger.Txn) error {
		var key []byte
		err := eachPost(txn, func(k []byte, p *models.Post) (bool, error) {
			if match(p) {
				key, post = k, p
				return true, nil
			}
			return false, nil
		})
		if err != nil {
			return err
		}
		if post == nil {
			return ErrNotFound
		}
		if err := mutate(post); err != nil {
			return err
		}
		return storePost(txn, key, post)
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Delete deletes a post by ID, together with its comments
func (r *BadgerPostRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.db.Update(func(txn *badger.Txn) error {
		key, err := lookupKey(txn, id)
		if err != nil {
			return err
		}
		if err := txn.Delete(key); err != nil {
			return err
		}
		return txn.Delete(indexKey(id))
	})
}

func lookupKey(txn *badger.Txn, id string) ([]byte, error) {
	item, err := txn.Get(indexKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func loadPost(txn *badger.Txn, id string) ([]byte, *models.Post, error) {
	key, err := lookupKey(txn, id)
	if err != nil {
		return nil, nil, err
	}
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	var post models.Post
	if err := item.Value(func(val []byte) error {
		return unmarshalEntity(val, &post)
	}); err != nil {
		return nil, nil, err
	}
	return key, &post, nil
}

func storePost(txn *badger.Txn, key []byte, post *models.Post) error {
	data, err := marshalEntity(post)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}

// eachPost walks posts in key order until fn asks to stop. The iterator is
// closed before eachPost returns, so callers may write afterwards.
func eachPost(txn *badger.Txn, fn func(key []byte, post *models.Post) (bool, error)) error {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	prefix := []byte(PostKeyPrefix)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		var post models.Post
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		}); err != nil {
			return err
		}
		stop, err := fn(item.KeyCopy(nil), &post)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
	return nil
}
