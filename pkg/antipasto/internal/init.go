// Package internal contains the core infrastructure for the antipasto popup
// menu toolkit. This includes SDL initialization, window and font management,
// theming, and rendering utilities. Types and functions in this package are
// not part of the public API.
package internal
