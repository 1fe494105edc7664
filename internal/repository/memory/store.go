// Package memory is an in-process implementation of the repositories, used
// for development and tests. It keeps the same uniqueness rules as the
// PostgreSQL schema.
package memory

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/repository"
)

type txKey struct{}

type likeKey struct {
	postID string
	userID string
}

// Store holds all data in maps guarded by a single lock. Writes and
// transactions are serialized by txMu; a failed transaction restores the
// snapshot taken when it began.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	users    map[string]domain.User
	profiles map[string]domain.Profile
	posts    map[string]domain.Post
	comments map[string]domain.Comment
	likes    map[likeKey]time.Time
	actions  []domain.ModerationAction
}

// New creates an empty store.
func New() *Store {
	return &Store{
		users:    make(map[string]domain.User),
		profiles: make(map[string]domain.Profile),
		posts:    make(map[string]domain.Post),
		comments: make(map[string]domain.Comment),
		likes:    make(map[likeKey]time.Time),
	}
}

// Users returns the account repository.
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

// Posts returns the post repository.
func (s *Store) Posts() *PostRepository { return &PostRepository{s: s} }

// Comments returns the comment repository.
func (s *Store) Comments() *CommentRepository { return &CommentRepository{s: s} }

// Likes returns the like repository.
func (s *Store) Likes() *LikeRepository { return &LikeRepository{s: s} }

// Moderation returns the audit log repository.
func (s *Store) Moderation() *ModerationRepository { return &ModerationRepository{s: s} }

// Ping always succeeds; it lets the store stand in for a database in health checks.
func (s *Store) Ping(context.Context) error { return nil }

type snapshot struct {
	users    map[string]domain.User
	profiles map[string]domain.Profile
	posts    map[string]domain.Post
	comments map[string]domain.Comment
	likes    map[likeKey]time.Time
	actions  []domain.ModerationAction
}

// WithinTransaction runs fn with exclusive write access. Nested calls join
// the outer transaction.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snap := snapshot{
		users:    maps.Clone(s.users),
		profiles: maps.Clone(s.profiles),
		posts:    maps.Clone(s.posts),
		comments: maps.Clone(s.comments),
		likes:    maps.Clone(s.likes),
		actions:  slices.Clone(s.actions),
	}
	s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.mu.Lock()
		s.users, s.profiles, s.posts = snap.users, snap.profiles, snap.posts
		s.comments, s.likes, s.actions = snap.comments, snap.likes, snap.actions
		s.mu.Unlock()
		return err
	}
	return nil
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// write runs fn under the data lock, joining the caller's transaction if any.
func (s *Store) write(ctx context.Context, fn func() error) error {
	if !inTx(ctx) {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

func paginate[T any](items []T, page repository.Page) []T {
	limit, offset := page.Limit, page.Offset
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return make([]T, 0)
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// UserRepository implements repository.UserRepository.
type UserRepository struct{ s *Store }

// CreateAccount stores a user and its profile.
func (r *UserRepository) CreateAccount(ctx context.Context, user *domain.User, profile *domain.Profile) error {
	return r.s.write(ctx, func() error {
		for _, u := range r.s.users {
			if u.Username == user.Username {
				return repository.ErrUsernameTaken
			}
		}
		r.s.users[user.ID] = *user
		r.s.profiles[profile.UserID] = *profile
		return nil
	})
}

// GetUser retrieves a user by ID.
func (r *UserRepository) GetUser(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetUserByUsername retrieves a user by username.
func (r *UserRepository) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

// GetProfile retrieves a profile by user ID.
func (r *UserRepository) GetProfile(_ context.Context, userID string) (*domain.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// UpdateProfile replaces a stored profile.
func (r *UserRepository) UpdateProfile(ctx context.Context, p *domain.Profile) error {
	return r.s.write(ctx, func() error {
		if _, ok := r.s.profiles[p.UserID]; !ok {
			return domain.ErrNotFound
		}
		r.s.profiles[p.UserID] = *p
		return nil
	})
}

// PostRepository implements repository.PostRepository.
type PostRepository struct{ s *Store }

func (r *PostRepository) slugUsed(month time.Time, slug, excludeID string) bool {
	month = domain.MonthOf(month)
	for id, p := range r.s.posts {
		if id != excludeID && p.Slug == slug && p.EffectiveMonth().Equal(month) {
			return true
		}
	}
	return false
}

// Create stores a new post.
func (r *PostRepository) Create(ctx context.Context, p *domain.Post) error {
	return r.s.write(ctx, func() error {
		if r.slugUsed(p.EffectiveMonth(), p.Slug, p.ID) {
			return repository.ErrSlugConflict
		}
		r.s.posts[p.ID] = *p
		return nil
	})
}

// Update replaces a stored post.
func (r *PostRepository) Update(ctx context.Context, p *domain.Post) error {
	return r.s.write(ctx, func() error {
		if _, ok := r.s.posts[p.ID]; !ok {
			return domain.ErrNotFound
		}
		if r.slugUsed(p.EffectiveMonth(), p.Slug, p.ID) {
			return repository.ErrSlugConflict
		}
		r.s.posts[p.ID] = *p
		return nil
	})
}

// GetByID retrieves a post by ID.
func (r *PostRepository) GetByID(_ context.Context, id string) (*domain.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.posts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetByPermalink retrieves a post by slug month and slug.
func (r *PostRepository) GetByPermalink(_ context.Context, month time.Time, slug string) (*domain.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	month = domain.MonthOf(month)
	for _, p := range r.s.posts {
		if p.Slug == slug && p.EffectiveMonth().Equal(month) {
			return &p, nil
		}
	}
	return nil, nil
}

// LockMonth is a no-op: transactions already run one at a time.
func (r *PostRepository) LockMonth(context.Context, time.Time) error {
	return nil
}

// SlugTaken reports whether another post uses slug in month.
func (r *PostRepository) SlugTaken(_ context.Context, month time.Time, slug, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.slugUsed(month, slug, excludeID), nil
}

func (r *PostRepository) summaries(match func(domain.Post) bool, since time.Time) []domain.PostSummary {
	out := make([]domain.PostSummary, 0)
	for _, p := range r.s.posts {
		if !match(p) {
			continue
		}
		s := domain.PostSummary{Post: p, AuthorUsername: r.s.users[p.AuthorID].Username}
		for _, c := range r.s.comments {
			if c.PostID == p.ID && c.IsVisible() {
				s.CommentsCount++
			}
		}
		for k, at := range r.s.likes {
			if k.postID == p.ID && (since.IsZero() || !at.Before(since)) {
				s.LikesCount++
			}
		}
		out = append(out, s)
	}
	return out
}

func publishedAt(p domain.Post) time.Time {
	if p.PublishedAt == nil {
		return time.Time{}
	}
	return *p.PublishedAt
}

// ListFeed lists published posts in feed order.
func (r *PostRepository) ListFeed(_ context.Context, feed domain.Feed, since time.Time, page repository.Page) ([]domain.PostSummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := r.summaries(func(p domain.Post) bool { return p.IsPublished() }, since)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if feed.RankedByLikes() && a.LikesCount != b.LikesCount {
			return a.LikesCount > b.LikesCount
		}
		if pa, pb := publishedAt(a.Post), publishedAt(b.Post); !pa.Equal(pb) {
			return pa.After(pb)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return paginate(out, page), nil
}

// ListPublishedByAuthor lists an author's published posts, newest first.
func (r *PostRepository) ListPublishedByAuthor(_ context.Context, authorID string, page repository.Page) ([]domain.PostSummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := r.summaries(func(p domain.Post) bool {
		return p.IsPublished() && p.AuthorID == authorID
	}, time.Time{})
	sort.Slice(out, func(i, j int) bool {
		if pa, pb := publishedAt(out[i].Post), publishedAt(out[j].Post); !pa.Equal(pb) {
			return pa.After(pb)
		}
		return out[i].ID < out[j].ID
	})
	return paginate(out, page), nil
}

// ListDrafts lists drafts, newest first.
func (r *PostRepository) ListDrafts(_ context.Context, page repository.Page) ([]domain.PostSummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := r.summaries(func(p domain.Post) bool { return !p.IsPublished() }, time.Time{})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return paginate(out, page), nil
}

// CountDrafts counts drafts.
func (r *PostRepository) CountDrafts(context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, p := range r.s.posts {
		if !p.IsPublished() {
			n++
		}
	}
	return n, nil
}

// CommentRepository implements repository.CommentRepository.
type CommentRepository struct{ s *Store }

// Create stores a comment.
func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	return r.s.write(ctx, func() error {
		if _, ok := r.s.posts[c.PostID]; !ok {
			return domain.ErrNotFound
		}
		r.s.comments[c.ID] = *c
		return nil
	})
}

// GetByID retrieves a comment by ID.
func (r *CommentRepository) GetByID(_ context.Context, id string) (*domain.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.comments[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// UpdateStatus writes the comment's visibility.
func (r *CommentRepository) UpdateStatus(ctx context.Context, c *domain.Comment) error {
	return r.s.write(ctx, func() error {
		stored, ok := r.s.comments[c.ID]
		if !ok {
			return domain.ErrNotFound
		}
		stored.Status = c.Status
		stored.UpdatedAt = c.UpdatedAt
		r.s.comments[c.ID] = stored
		return nil
	})
}

// Delete removes a comment and its replies.
func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	return r.s.write(ctx, func() error {
		if _, ok := r.s.comments[id]; !ok {
			return domain.ErrNotFound
		}
		delete(r.s.comments, id)
		for cid, c := range r.s.comments {
			if c.ParentID != nil && *c.ParentID == id {
				delete(r.s.comments, cid)
			}
		}
		return nil
	})
}

// ListThreads returns visible root comments with their visible replies.
func (r *CommentRepository) ListThreads(_ context.Context, postID string) ([]domain.CommentThread, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var flat []domain.CommentReply
	for _, c := range r.s.comments {
		if c.PostID != postID || !c.IsVisible() {
			continue
		}
		if c.ParentID != nil {
			if parent, ok := r.s.comments[*c.ParentID]; !ok || !parent.IsVisible() {
				continue
			}
		}
		flat = append(flat, domain.CommentReply{Comment: c, AuthorUsername: r.s.users[c.AuthorID].Username})
	}
	sort.Slice(flat, func(i, j int) bool {
		if !flat[i].CreatedAt.Equal(flat[j].CreatedAt) {
			return flat[i].CreatedAt.Before(flat[j].CreatedAt)
		}
		return flat[i].ID < flat[j].ID
	})
	return repository.BuildThreads(flat), nil
}

// ListHidden lists hidden comments, newest first.
func (r *CommentRepository) ListHidden(_ context.Context, page repository.Page) ([]domain.CommentQueueItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.CommentQueueItem, 0)
	for _, c := range r.s.comments {
		if c.IsVisible() {
			continue
		}
		out = append(out, domain.CommentQueueItem{
			Comment:        c,
			AuthorUsername: r.s.users[c.AuthorID].Username,
			PostTitle:      r.s.posts[c.PostID].Title,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return paginate(out, page), nil
}

// CountHidden counts hidden comments.
func (r *CommentRepository) CountHidden(context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, c := range r.s.comments {
		if !c.IsVisible() {
			n++
		}
	}
	return n, nil
}

// LikeRepository implements repository.LikeRepository.
type LikeRepository struct{ s *Store }

// Toggle flips the user's like on the post.
func (r *LikeRepository) Toggle(ctx context.Context, postID, userID string, now time.Time) (bool, error) {
	var liked bool
	err := r.s.write(ctx, func() error {
		key := likeKey{postID: postID, userID: userID}
		if _, ok := r.s.likes[key]; ok {
			delete(r.s.likes, key)
			return nil
		}
		r.s.likes[key] = now
		liked = true
		return nil
	})
	return liked, err
}

// Count counts all likes of a post.
func (r *LikeRepository) Count(_ context.Context, postID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for k := range r.s.likes {
		if k.postID == postID {
			n++
		}
	}
	return n, nil
}

// Exists reports whether the user likes the post.
func (r *LikeRepository) Exists(_ context.Context, postID, userID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.likes[likeKey{postID: postID, userID: userID}]
	return ok, nil
}

// ModerationRepository implements repository.ModerationRepository.
type ModerationRepository struct{ s *Store }

// Append records an action.
func (r *ModerationRepository) Append(ctx context.Context, a *domain.ModerationAction) error {
	return r.s.write(ctx, func() error {
		r.s.actions = append(r.s.actions, *a)
		return nil
	})
}

func (r *ModerationRepository) matching(filter domain.ModerationActionFilter) []domain.ModerationAction {
	out := make([]domain.ModerationAction, 0)
	for _, a := range r.s.actions {
		if filter.TargetType != "" && a.TargetType != filter.TargetType {
			continue
		}
		if filter.TargetID != "" && a.TargetID != filter.TargetID {
			continue
		}
		out = append(out, a)
	}
	return out
}

// List returns matching actions, newest first.
func (r *ModerationRepository) List(_ context.Context, filter domain.ModerationActionFilter, page repository.Page) ([]domain.ModerationAction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := r.matching(filter)
	slices.Reverse(out)
	return paginate(out, page), nil
}

// StreamAll calls callback for every matching action, oldest first.
func (r *ModerationRepository) StreamAll(ctx context.Context, filter domain.ModerationActionFilter, callback func(domain.ModerationAction) error) error {
	r.s.mu.RLock()
	out := r.matching(filter)
	r.s.mu.RUnlock()

	for _, a := range out {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if err := callback(a); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ repository.Transactor           = (*Store)(nil)
	_ repository.UserRepository       = (*UserRepository)(nil)
	_ repository.PostRepository       = (*PostRepository)(nil)
	_ repository.CommentRepository    = (*CommentRepository)(nil)
	_ repository.LikeRepository       = (*LikeRepository)(nil)
	_ repository.ModerationRepository = (*ModerationRepository)(nil)
)
