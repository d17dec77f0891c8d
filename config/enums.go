package config

//go:generate go tool go-enum --marshal --nocomments

// Specification of what to do when the mapping names a field the document
// does not have.
// ENUM(ignore, warn, fail)
type OnUnknownField int
