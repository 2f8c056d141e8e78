package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/model"
)

type PostRepository struct {
	log    *logger.Logger
	mu     sync.Mutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func copyPost(post *model.Post) *model.Post {
	result := *post
	result.Likes.Users = append([]string{}, post.Likes.Users...)
	return &result
}

func (p *PostRepository) Create(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	newPost := &model.Post{
		ID:        p.nextID,
		Email:     post.Email,
		Message:   post.Message,
		Likes:     model.Likes{Count: 0, Users: []string{}},
		CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	p.nextID++

	p.posts[newPost.ID] = newPost

	return copyPost(newPost), nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	return copyPost(post), nil
}

func (p *PostRepository) List(ctx context.Context) ([]*model.Post, int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	result := make([]*model.Post, 0, len(p.posts))
	for _, post := range p.posts {
		result = append(result, copyPost(post))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Time.After(result[j].CreatedAt.Time)
	})

	return result, len(result), nil
}

// AddLike holds the lock across the membership test and the mutation, giving
// the same atomicity the postgres repository gets from a single statement.
func (p *PostRepository) AddLike(ctx context.Context, id int64, userID string) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	for _, u := range post.Likes.Users {
		if u == userID {
			return nil, custom_errors.ErrAlreadyLiked
		}
	}

	post.Likes.Users = append(post.Likes.Users, userID)
	post.Likes.Count++

	return copyPost(post), nil
}

func (p *PostRepository) RemoveLike(ctx context.Context, id int64, userID string) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	idx := -1
	for i, u := range post.Likes.Users {
		if u == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, custom_errors.ErrNotLiked
	}

	post.Likes.Users = append(post.Likes.Users[:idx], post.Likes.Users[idx+1:]...)
	if post.Likes.Count > 0 {
		post.Likes.Count--
	}

	return copyPost(post), nil
}
