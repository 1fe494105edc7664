package validator

import (
	"errors"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/slug"
)

var (
	slugRegex     = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	usernameRegex = regexp.MustCompile(`^[\w.@+-]+$`)
	httpURLRegex  = regexp.MustCompile(`^https?://`)
	validStatus   = []interface{}{domain.PostStatusDraft, domain.PostStatusPublished}
)

var (
	errSlugTooLong      = validation.NewError("slug_too_long", "slug must be at most 50 characters")
	errSlugFormat       = validation.NewError("invalid_slug_format", "slug may contain lowercase letters, digits and hyphens")
	errCoverURL         = validation.NewError("invalid_cover_url", "cover must be an absolute URL")
	errStatus           = validation.NewError("invalid_status", "status must be draft or published")
	errAvatarURL        = validation.NewError("invalid_avatar_url", "avatar must be an absolute URL")
	errWebsite          = validation.NewError("invalid_website", "website must be an absolute URL")
	errUsernameRequired = validation.NewError("username_required", "username is required")
	errUsernameTooLong  = validation.NewError("username_too_long", "username must be at most 150 characters")
	errUsernameFormat   = validation.NewError("invalid_username", "username may contain letters, digits and @.+-_")
	errEmailFormat      = validation.NewError("invalid_email_format", "email is not valid")
)

// Field limits.
const (
	TitleMaxLength       = 200
	UsernameMaxLength    = 150
	DisplayNameMaxLength = 150
)

// Validator provides validation methods for user input.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePostInput validates a post submission.
func (v *Validator) ValidatePostInput(in *domain.PostInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.By(trimmedRequired("title_required", "title is required")),
			validation.By(maxRunes(TitleMaxLength, "title_too_long", "title must be at most 200 characters")),
		),
		validation.Field(&in.Slug,
			validation.Length(0, slug.MaxLength).ErrorObject(errSlugTooLong),
			validation.Match(slugRegex).ErrorObject(errSlugFormat),
		),
		validation.Field(&in.Body,
			validation.By(trimmedRequired("body_required", "body is required")),
		),
		validation.Field(&in.CoverURL,
			validation.NilOrNotEmpty.ErrorObject(errCoverURL),
			is.RequestURL.ErrorObject(errCoverURL),
			validation.Match(httpURLRegex).ErrorObject(errCoverURL),
		),
		validation.Field(&in.Status,
			validation.In(validStatus...).ErrorObject(errStatus),
		),
	)
}

// ValidateCommentBody checks the trimmed length of a comment body.
func (v *Validator) ValidateCommentBody(body string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(body))
	if n < domain.CommentMinLength || n > domain.CommentMaxLength {
		return validation.Errors{
			"body": validation.NewError("invalid_comment_length", "comment must be between 1 and 2000 characters"),
		}
	}
	return nil
}

// ValidateProfileInput validates a profile edit.
func (v *Validator) ValidateProfileInput(in *domain.ProfileInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.DisplayName,
			validation.By(maxRunes(DisplayNameMaxLength, "display_name_too_long", "display name must be at most 150 characters")),
		),
		validation.Field(&in.AvatarURL,
			is.RequestURL.ErrorObject(errAvatarURL),
			validation.Match(httpURLRegex).ErrorObject(errAvatarURL),
		),
		validation.Field(&in.Website,
			is.RequestURL.ErrorObject(errWebsite),
			validation.Match(httpURLRegex).ErrorObject(errWebsite),
		),
	)
}

// ValidateAccountInput validates account provisioning.
func (v *Validator) ValidateAccountInput(in *domain.AccountInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Username,
			validation.Required.ErrorObject(errUsernameRequired),
			validation.Length(1, UsernameMaxLength).ErrorObject(errUsernameTooLong),
			validation.Match(usernameRegex).ErrorObject(errUsernameFormat),
		),
		validation.Field(&in.Email,
			is.EmailFormat.ErrorObject(errEmailFormat),
		),
	)
}

// trimmedRequired rejects strings that are empty after trimming.
func trimmedRequired(code, msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		if strings.TrimSpace(s) == "" {
			return validation.NewError(code, msg)
		}
		return nil
	}
}

// maxRunes creates a rule bounding a string's length in characters.
func maxRunes(max int, code, msg string) validation.RuleFunc {
	return func(value interface{}) error {
		value, isNil := validation.Indirect(value)
		s, ok := value.(string)
		if isNil || !ok {
			return nil
		}
		if utf8.RuneCountInString(s) > max {
			return validation.NewError(code, msg)
		}
		return nil
	}
}

// FieldError is a single failed field in an API response.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ConvertValidationErrors flattens ozzo validation errors for API responses,
// sorted by field name.
func ConvertValidationErrors(err error) []FieldError {
	var out []FieldError

	var ve validation.Errors
	if errors.As(err, &ve) {
		for field, fieldErr := range ve {
			fe := FieldError{Field: field, Message: fieldErr.Error()}
			if coded, ok := fieldErr.(validation.Error); ok {
				fe.Code = coded.Code()
			}
			out = append(out, fe)
		}
	} else if err != nil {
		out = append(out, FieldError{Field: "unknown", Message: err.Error()})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}
