// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, path and
// semantic version matching, HTTP response writing, HTTP client
// initialization, and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// LocaleCtxKey is the key used to store the locale negotiated from the
// request's Accept-Language header.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.LocaleCtxKey, "pt")
var LocaleCtxKey = contextKey("locale")

// GetLocaleFromContext retrieves the negotiated locale from the context.
//
// Returns the locale and an ok flag:
//   - ok == true: value is found, is a string and is not empty
//   - ok == false: value is missing or has an unexpected type
func GetLocaleFromContext(ctx context.Context) (string, bool) {
	locale, ok := ctx.Value(LocaleCtxKey).(string)
	return locale, ok && locale != ""
}
