package domain

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// TargetType is the kind of object a moderation action applies to.
type TargetType string

const (
	TargetPost    TargetType = "post"
	TargetComment TargetType = "comment"
)

// ModerationActionType is what a moderator did.
type ModerationActionType string

const (
	ActionApprove ModerationActionType = "approve"
	ActionReject  ModerationActionType = "reject"
	ActionHide    ModerationActionType = "hide"
	ActionUnhide  ModerationActionType = "unhide"
)

// MaxReasonLength bounds the free-text reason of a moderation action.
const MaxReasonLength = 255

// ModerationAction is an immutable audit record of a moderator decision.
type ModerationAction struct {
	ID          string               `json:"id"`
	TargetType  TargetType           `json:"target_type"`
	TargetID    string               `json:"target_id"`
	Action      ModerationActionType `json:"action"`
	Reason      string               `json:"reason"`
	ModeratorID string               `json:"moderator_id"`
	CreatedAt   time.Time            `json:"created_at"`
}

// NewModerationAction builds an audit record, truncating the reason to
// MaxReasonLength characters.
func NewModerationAction(target TargetType, targetID string, action ModerationActionType, reason, moderatorID string, now time.Time) *ModerationAction {
	return &ModerationAction{
		ID:          uuid.New().String(),
		TargetType:  target,
		TargetID:    targetID,
		Action:      action,
		Reason:      TruncateReason(reason),
		ModeratorID: moderatorID,
		CreatedAt:   now.UTC(),
	}
}

// TruncateReason cuts s to MaxReasonLength characters.
func TruncateReason(s string) string {
	if utf8.RuneCountInString(s) <= MaxReasonLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:MaxReasonLength])
}

// ValidTargetTypes contains all valid moderation target types.
var ValidTargetTypes = []TargetType{TargetPost, TargetComment}

// IsValidTargetType checks if a target type is valid.
func IsValidTargetType(t TargetType) bool {
	for _, v := range ValidTargetTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ModerationActionFilter narrows an audit log listing. Empty fields match all.
type ModerationActionFilter struct {
	TargetType TargetType
	TargetID   string
}

// ModerationDashboard holds the moderation queue sizes and the latest decisions.
type ModerationDashboard struct {
	PendingPosts   int                `json:"pending_posts"`
	HiddenComments int                `json:"hidden_comments"`
	RecentActions  []ModerationAction `json:"recent_actions"`
}

// Export formats for the audit log.
const (
	FormatCSV    = "csv"
	FormatNDJSON = "ndjson"
)

// ValidFormats contains all valid export formats.
var ValidFormats = []string{FormatCSV, FormatNDJSON}

// IsValidFormat checks if an export format is valid.
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
