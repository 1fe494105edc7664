package domain

import "errors"

var (
	// ErrNotFound is returned both for missing resources and for resources the
	// caller may not see or change, so the two cases cannot be told apart.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthenticated is returned when an operation needs a signed-in user.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrRateLimited is a soft rejection of a comment submission.
	ErrRateLimited = errors.New("too many submissions, try again in a few seconds")

	// ErrInvalidTransition is returned when a published post is moved back to draft.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidStatus is returned for an unknown post or comment status.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrReplyDepth is returned when replying to a reply.
	ErrReplyDepth = errors.New("replies to replies are not allowed")
)
