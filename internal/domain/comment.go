package domain

import "time"

// CommentStatus is the visibility of a comment.
type CommentStatus string

const (
	CommentStatusVisible CommentStatus = "visible"
	CommentStatusHidden  CommentStatus = "hidden"
)

// Comment bounds.
const (
	CommentMinLength = 1
	CommentMaxLength = 2000
)

// Comment represents a comment on a post. Comments nest one level deep.
type Comment struct {
	ID        string        `json:"id"`
	PostID    string        `json:"post_id"`
	ParentID  *string       `json:"parent_id,omitempty"`
	AuthorID  string        `json:"author_id"`
	Body      string        `json:"body"`
	Status    CommentStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// IsReply reports whether the comment answers another comment.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}

// IsVisible reports whether the comment shows in default listings.
func (c *Comment) IsVisible() bool {
	return c.Status == CommentStatusVisible
}

// ReplyTo attaches c under parent. A reply cannot itself be replied to.
func (c *Comment) ReplyTo(parent *Comment) error {
	if parent.IsReply() {
		return ErrReplyDepth
	}
	id := parent.ID
	c.ParentID = &id
	return nil
}

// SetStatus changes the visibility and reports whether anything changed.
func (c *Comment) SetStatus(status CommentStatus, now time.Time) (bool, error) {
	if status != CommentStatusVisible && status != CommentStatusHidden {
		return false, ErrInvalidStatus
	}
	if c.Status == status {
		return false, nil
	}
	c.Status = status
	c.UpdatedAt = now.UTC()
	return true, nil
}

// CommentInput carries a new comment submission.
type CommentInput struct {
	Body     string  `json:"body"`
	ParentID *string `json:"parent_id"`
}

// CommentThread is a root comment with its replies, oldest first.
type CommentThread struct {
	Comment
	AuthorUsername string         `json:"author_username"`
	Replies        []CommentReply `json:"replies"`
}

// CommentReply is a reply inside a thread.
type CommentReply struct {
	Comment
	AuthorUsername string `json:"author_username"`
}

// CommentQueueItem is a comment as listed in the moderation queue.
type CommentQueueItem struct {
	Comment
	AuthorUsername string `json:"author_username"`
	PostTitle      string `json:"post_title"`
}
