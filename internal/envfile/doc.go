// Package envfile builds configuration snapshots from a dotenv file and the
// process environment.
//
// Values already present in the process environment win over values from the
// file, and a missing file is not an error. The returned snapshot is a plain
// resolver.Map; the process environment is never modified.
package envfile
