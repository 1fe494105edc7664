package validator

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/nikol804/dotapost/internal/domain"
)

func strPtr(s string) *string { return &s }

// fieldCode returns the error code reported for field, or "" when it passed.
func fieldCode(t *testing.T, err error, field string) string {
	t.Helper()
	var ve validation.Errors
	if !errors.As(err, &ve) {
		return ""
	}
	fieldErr, ok := ve[field]
	if !ok {
		return ""
	}
	var coded validation.Error
	if !errors.As(fieldErr, &coded) {
		t.Fatalf("field %s error %v carries no code", field, fieldErr)
	}
	return coded.Code()
}

func TestValidatePostInput(t *testing.T) {
	v := NewValidator()

	valid := func() *domain.PostInput {
		return &domain.PostInput{Title: "Hello World", Body: "<p>text</p>"}
	}

	tests := []struct {
		name   string
		mutate func(in *domain.PostInput)
		field  string
		code   string
	}{
		{name: "valid post", mutate: func(*domain.PostInput) {}},
		{name: "valid with slug and status", mutate: func(in *domain.PostInput) {
			in.Slug = "hello-world"
			in.Status = domain.PostStatusPublished
			in.CoverURL = strPtr("https://cdn.example.com/a.png")
		}},
		{name: "missing title", mutate: func(in *domain.PostInput) { in.Title = "  " }, field: "title", code: "title_required"},
		{name: "title too long", mutate: func(in *domain.PostInput) { in.Title = strings.Repeat("a", 201) }, field: "title", code: "title_too_long"},
		{name: "cyrillic title at limit", mutate: func(in *domain.PostInput) { in.Title = strings.Repeat("я", 200) }},
		{name: "missing body", mutate: func(in *domain.PostInput) { in.Body = "" }, field: "body", code: "body_required"},
		{name: "bad slug", mutate: func(in *domain.PostInput) { in.Slug = "Hello World" }, field: "slug", code: "invalid_slug_format"},
		{name: "long slug", mutate: func(in *domain.PostInput) { in.Slug = strings.Repeat("a", 51) }, field: "slug", code: "slug_too_long"},
		{name: "unknown status", mutate: func(in *domain.PostInput) { in.Status = "archived" }, field: "status", code: "invalid_status"},
		{name: "bad cover", mutate: func(in *domain.PostInput) { in.CoverURL = strPtr("not a url") }, field: "cover_url", code: "invalid_cover_url"},
		{name: "empty cover", mutate: func(in *domain.PostInput) { in.CoverURL = strPtr("") }, field: "cover_url", code: "invalid_cover_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(in)
			err := v.ValidatePostInput(in)

			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if got := fieldCode(t, err, tt.field); got != tt.code {
				t.Errorf("code for %s = %q, want %q (err: %v)", tt.field, got, tt.code, err)
			}
		})
	}
}

func TestValidateCommentBody(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"single character", "a", false},
		{"at limit", strings.Repeat("ж", 2000), false},
		{"limit after trimming", "  " + strings.Repeat("a", 2000) + "\n", false},
		{"empty", "", true},
		{"whitespace only", " \n\t ", true},
		{"too long", strings.Repeat("a", 2001), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateCommentBody(tt.body)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateCommentBody() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && fieldCode(t, err, "body") != "invalid_comment_length" {
				t.Errorf("unexpected code: %v", err)
			}
		})
	}
}

func TestValidateProfileInput(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		in    domain.ProfileInput
		field string
		code  string
	}{
		{name: "empty profile", in: domain.ProfileInput{}},
		{name: "full profile", in: domain.ProfileInput{
			DisplayName: strPtr("Alice"),
			Bio:         "bio",
			AvatarURL:   strPtr("https://cdn.example.com/alice.png"),
			Website:     strPtr("https://alice.example.com"),
		}},
		{name: "long display name", in: domain.ProfileInput{DisplayName: strPtr(strings.Repeat("a", 151))}, field: "display_name", code: "display_name_too_long"},
		{name: "bad website", in: domain.ProfileInput{Website: strPtr("alice")}, field: "website", code: "invalid_website"},
		{name: "bad avatar", in: domain.ProfileInput{AvatarURL: strPtr("::")}, field: "avatar_url", code: "invalid_avatar_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			err := v.ValidateProfileInput(&in)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if got := fieldCode(t, err, tt.field); got != tt.code {
				t.Errorf("code for %s = %q, want %q (err: %v)", tt.field, got, tt.code, err)
			}
		})
	}
}

func TestValidateAccountInput(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		in    domain.AccountInput
		field string
		code  string
	}{
		{name: "valid", in: domain.AccountInput{Username: "alice", Email: "alice@example.com"}},
		{name: "no email", in: domain.AccountInput{Username: "bob.b+news@x"}},
		{name: "missing username", in: domain.AccountInput{}, field: "username", code: "username_required"},
		{name: "spaces in username", in: domain.AccountInput{Username: "al ice"}, field: "username", code: "invalid_username"},
		{name: "bad email", in: domain.AccountInput{Username: "alice", Email: "alice"}, field: "email", code: "invalid_email_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			err := v.ValidateAccountInput(&in)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if got := fieldCode(t, err, tt.field); got != tt.code {
				t.Errorf("code for %s = %q, want %q (err: %v)", tt.field, got, tt.code, err)
			}
		})
	}
}

func TestConvertValidationErrors(t *testing.T) {
	err := validation.Errors{"body": validation.NewError("invalid_comment_length", "too long")}
	got := ConvertValidationErrors(err)
	if len(got) != 1 || got[0].Field != "body" || got[0].Code != "invalid_comment_length" {
		t.Fatalf("got %+v", got)
	}

	wrapped := ConvertValidationErrors(fmt.Errorf("create post: %w", validation.Errors{
		"title": validation.NewError("title_required", "required"),
		"body":  validation.NewError("body_required", "required"),
	}))
	if len(wrapped) != 2 || wrapped[0].Field != "body" || wrapped[1].Code != "title_required" {
		t.Fatalf("got %+v", wrapped)
	}

	plain := ConvertValidationErrors(errors.New("boom"))
	if len(plain) != 1 || plain[0].Field != "unknown" {
		t.Fatalf("got %+v", plain)
	}
}
