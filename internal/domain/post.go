package domain

import (
	"fmt"
	"time"
)

// PostStatus is the publication state of a post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

// ValidPostStatuses contains all valid post statuses.
var ValidPostStatuses = []PostStatus{PostStatusDraft, PostStatusPublished}

// IsValidPostStatus checks if a status is valid.
func IsValidPostStatus(status PostStatus) bool {
	for _, s := range ValidPostStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Post represents a news post.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Summary     string     `json:"summary"`
	Body        string     `json:"body"`
	CoverURL    *string    `json:"cover_url,omitempty"`
	AuthorID    string     `json:"author_id"`
	Status      PostStatus `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsPublished reports whether the post is publicly visible.
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// Transition moves the post to the requested status. The only transition is
// draft to published; published_at is stamped the first time the post is
// published and never touched again. An empty status keeps the current one.
func (p *Post) Transition(to PostStatus, now time.Time) error {
	switch {
	case to == "" || to == p.Status:
	case !IsValidPostStatus(to):
		return ErrInvalidStatus
	case to == PostStatusDraft && p.Status == PostStatusPublished:
		return ErrInvalidTransition
	default:
		p.Status = to
	}

	if p.Status == "" {
		p.Status = PostStatusDraft
	}
	if p.Status == PostStatusPublished && p.PublishedAt == nil {
		t := now.UTC()
		p.PublishedAt = &t
	}
	return nil
}

// EffectiveMonth returns the first instant (UTC) of the month the post's slug
// is scoped to: the publication month once published, the creation month before.
func (p *Post) EffectiveMonth() time.Time {
	ref := p.CreatedAt
	if p.PublishedAt != nil {
		ref = *p.PublishedAt
	}
	return MonthOf(ref)
}

// Permalink returns the public path of the post.
func (p *Post) Permalink() string {
	m := p.EffectiveMonth()
	return fmt.Sprintf("/posts/%d/%d/%s", m.Year(), int(m.Month()), p.Slug)
}

// MonthOf truncates t to the first instant of its month in UTC.
func MonthOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// PostInput carries the author-editable fields of a post.
type PostInput struct {
	Title    string     `json:"title"`
	Slug     string     `json:"slug"`
	Summary  string     `json:"summary"`
	Body     string     `json:"body"`
	CoverURL *string    `json:"cover_url"`
	Status   PostStatus `json:"status"`
}

// PostSummary is a post as shown in feeds.
type PostSummary struct {
	Post
	AuthorUsername string `json:"author_username"`
	CommentsCount  int    `json:"comments_count"`
	LikesCount     int    `json:"likes_count"`
}

// PostDetail is a post with its visible discussion.
type PostDetail struct {
	Post
	AuthorUsername string          `json:"author_username"`
	Comments       []CommentThread `json:"comments"`
	LikesCount     int             `json:"likes_count"`
	LikedByViewer  bool            `json:"liked_by_viewer"`
}

// Feed selects the ordering of a post listing.
type Feed string

const (
	FeedLatest      Feed = "latest"
	FeedInteresting Feed = "interesting"
	FeedTopWeek     Feed = "top_week"
	FeedTopMonth    Feed = "top_month"
)

// ValidFeeds contains all valid feeds.
var ValidFeeds = []Feed{FeedLatest, FeedInteresting, FeedTopWeek, FeedTopMonth}

// IsValidFeed checks if a feed is valid.
func IsValidFeed(feed Feed) bool {
	for _, f := range ValidFeeds {
		if f == feed {
			return true
		}
	}
	return false
}

// Window returns how far back likes count for the feed; zero means all time.
func (f Feed) Window() time.Duration {
	switch f {
	case FeedTopWeek:
		return 7 * 24 * time.Hour
	case FeedTopMonth:
		return 30 * 24 * time.Hour
	default:
		return 0
	}
}

// RankedByLikes reports whether the feed orders by like count.
func (f Feed) RankedByLikes() bool {
	return f != FeedLatest
}

// Like records that a user likes a post. At most one per (post, user).
type Like struct {
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
