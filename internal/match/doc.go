// Package match ranks names by edit distance and by loose normalization.
// The resolver uses it to attach "did you mean" suggestions to unknown page
// type errors; schema validation uses it for unknown kinds and parents.
package match
