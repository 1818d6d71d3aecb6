package sessionrepo

import "errors"

// ErrNoSession is returned when the slot holds no session record.
var ErrNoSession = errors.New("no active session")
