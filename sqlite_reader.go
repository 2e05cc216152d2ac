package formatkit

import "io"

// refineSqlite is a pass-through. The database family has no sibling
// formats to select, and a malformed header behind an already-matched
// signature is a structural failure, which keeps the base format
// unchanged like every other reader.
func refineSqlite(rs io.ReadSeeker, size int64, base Format) Format {
	return base
}
