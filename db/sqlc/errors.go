package db

import "github.com/lib/pq"

const (
	// 23505 --> violated unique constraint, e.g. a second payment row for
	// an application that already has one.
	DuplicateEntry pq.ErrorCode = "23505"
)
