package ledger

import "errors"

// ErrTransactionNotFound is returned when no transaction matches both the
// id and the session. Cross-session lookups surface this same error so the
// store never leaks whether an id exists under another session.
var ErrTransactionNotFound = errors.New("transaction not found")
