package database

import "errors"

// ErrUnavailable is returned by every store operation when no database
// connection was configured at startup. Handlers map it to a server
// error; only the diagnostic endpoint reports it inline.
var ErrUnavailable = errors.New("database not configured")
