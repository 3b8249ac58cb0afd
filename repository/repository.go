package repository

import "errors"

// ErrNotFound is returned when a query matches no document. For owned
// deletes it also covers "exists but not yours": the two cases are
// deliberately indistinguishable so callers cannot probe for other users'
// posts.
var ErrNotFound = errors.New("not found")
