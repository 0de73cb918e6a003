// Package resolver decides which object-storage backend is active and whether
// it carries the credentials it needs.
//
// Resolution is a pure function over a configuration snapshot: it never reads
// the process environment, never logs and never fails. Absent and empty values
// are treated the same. Callers such as the CLI and the status endpoints turn
// the Ready flag into exit codes or HTTP statuses.
//
// Example usage:
//
//	res := resolver.Resolve(resolver.Map{
//		resolver.KeyUseR2:         "true",
//		resolver.KeyR2Endpoint:    "https://acct.r2.cloudflarestorage.com",
//		resolver.KeyR2AccessKeyID: "id",
//		resolver.KeyR2SecretKey:   "secret",
//	})
//	// res.Active == resolver.BackendR2, res.Ready == true
package resolver
