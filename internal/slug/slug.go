// Package slug builds URL slugs for posts and picks the first free one within
// a month.
package slug

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	gosimple "github.com/gosimple/slug"
)

const (
	// Fallback is used when a title has nothing slug-worthy in it.
	Fallback = "post"

	// MaxLength bounds the base slug so suffixed candidates stay short.
	MaxLength = 50

	// MaxProbes bounds how many candidates Allocate tries.
	MaxProbes = 1000
)

// ErrExhausted is returned when every probed candidate is taken.
var ErrExhausted = errors.New("no free slug candidate")

// TakenFunc reports whether candidate is already used by another post in the
// same month.
type TakenFunc func(ctx context.Context, candidate string) (bool, error)

// Base turns a title (or an author-supplied slug) into a URL-safe base slug.
// Non-Latin scripts are transliterated.
func Base(title string) string {
	s := gosimple.Make(title)
	if len(s) > MaxLength {
		s = strings.TrimRight(s[:MaxLength], "-")
	}
	if s == "" {
		return Fallback
	}
	return s
}

// Valid reports whether s is already a normalized slug.
func Valid(s string) bool {
	return len(s) <= MaxLength && gosimple.IsSlug(s)
}

// Candidate returns the n-th candidate for base: base itself for n <= 1,
// base-n otherwise.
func Candidate(base string, n int) string {
	if n <= 1 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}

// Allocate probes base, base-2, base-3, ... and returns the first candidate
// taken reports as free.
func Allocate(ctx context.Context, base string, taken TakenFunc) (string, error) {
	if base == "" {
		base = Fallback
	}
	for n := 1; n <= MaxProbes; n++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		candidate := Candidate(base, n)
		used, err := taken(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("probe slug %q: %w", candidate, err)
		}
		if !used {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("allocate slug %q: %w", base, ErrExhausted)
}
