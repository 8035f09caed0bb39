package schema

import "embed"

// Files holds the idempotent bootstrap SQL, one directory per dialect.
//
//go:embed sqlite/*.sql postgres/*.sql
var Files embed.FS
