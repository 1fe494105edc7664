// Package authz decides who may moderate content.
package authz

import "github.com/nikol804/dotapost/internal/domain"

// Policy is consulted by every moderation entry point.
type Policy struct {
	// AllowStaff extends moderation rights to staff accounts.
	AllowStaff bool
}

// SuperuserOnly is the default policy: only active superusers moderate.
var SuperuserOnly = Policy{}

// CanModerate reports whether u may approve, reject, hide or unhide content.
func (p Policy) CanModerate(u *domain.User) bool {
	if u == nil || !u.Active {
		return false
	}
	if u.IsSuperuser {
		return true
	}
	return p.AllowStaff && u.IsStaff
}

// CanEditPost reports whether u may edit post. Only the author may.
func CanEditPost(u *domain.User, post *domain.Post) bool {
	return u != nil && post != nil && u.ID == post.AuthorID
}

// CanDeleteComment reports whether u may delete c. Only the author may.
func CanDeleteComment(u *domain.User, c *domain.Comment) bool {
	return u != nil && c != nil && u.ID == c.AuthorID
}

// CanViewPost reports whether viewer may see post. Drafts are visible to
// their author only; viewer may be nil for anonymous requests.
func CanViewPost(viewer *domain.User, post *domain.Post) bool {
	if post == nil {
		return false
	}
	if post.IsPublished() {
		return true
	}
	return viewer != nil && viewer.ID == post.AuthorID
}
