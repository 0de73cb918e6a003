// Package storage builds clients and object URLs for the configured storage
// backends. Constructing a client never contacts the provider.
package storage
