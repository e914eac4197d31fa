package service

import "regexp"

// ValidationError marks malformed or missing input so the transport layer
// can map it to a 400 with errors.As, distinct from duplicates and
// not-found.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	phoneRe    = regexp.MustCompile(`^1[3-9]\d{9}$`)
)
