package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/angeloszaimis/storagecheck/internal/resolver"
	"github.com/angeloszaimis/storagecheck/internal/storage"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Write renders res in the given format.
func Write(w io.Writer, format string, src resolver.Source, res resolver.Result) error {
	switch format {
	case FormatText:
		return Text(w, src, res)
	case FormatJSON:
		return JSON(w, res)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// JSON writes res as indented JSON.
func JSON(w io.Writer, res resolver.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// Text writes the environment overview, per-backend status and summary.
func Text(w io.Writer, src resolver.Source, res resolver.Result) error {
	p := &printer{w: w}

	p.line("Environment variables:")
	p.field(resolver.KeyUseR2, rawOrUnset(src, resolver.KeyUseR2))
	for _, key := range resolver.RequiredKeys(resolver.BackendR2) {
		p.field(key, setOrUnset(src, key))
	}
	p.field(resolver.KeyR2BucketName, bucket(src))
	p.field(resolver.KeyR2PublicURL, optional(src, resolver.KeyR2PublicURL))
	p.line("")
	for _, key := range resolver.RequiredKeys(resolver.BackendCloudinary) {
		p.field(key, setOrUnset(src, key))
	}
	p.line("")

	for _, b := range []resolver.Backend{resolver.BackendR2, resolver.BackendCloudinary} {
		st := res.Status(b)
		p.line(b.DisplayName() + ":")
		p.field("  Enabled", yesNo(st.Enabled))
		p.field("  Configured", yesNo(st.Configured))
		p.line("")
	}

	p.line("Summary:")
	p.field("  Active storage", res.Active.DisplayName())
	if res.Ready {
		p.field("  Status", "READY")
	} else {
		p.field("  Status", "NOT CONFIGURED")
	}
	p.line("")

	if !res.Ready {
		p.line(fmt.Sprintf("Warning: active storage %s is not properly configured.", res.Active.DisplayName()))
		p.line("  Missing: " + strings.Join(res.Status(res.Active).Missing, ", "))
		p.line("  Set these variables in your .env file.")
		return p.err
	}

	p.line("Storage configuration is valid and ready to use.")
	p.line("")
	p.line("Tips:")
	p.line(fmt.Sprintf("  - New uploads will go to: %s (%s)", res.Active.DisplayName(), storage.Destination(src, res)))
	p.line("  - To switch storage, change " + resolver.KeyUseR2 + " in .env")
	p.line("  - Existing files in both storages remain readable")

	return p.err
}

// printer keeps the first write error so rendering code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) field(name, value string) {
	p.line(fmt.Sprintf("%s: %s", name, value))
}

func rawOrUnset(src resolver.Source, key string) string {
	if src != nil {
		if v, ok := src.Lookup(key); ok {
			return fmt.Sprintf("%q", v)
		}
	}
	return "not set"
}

func setOrUnset(src resolver.Source, key string) string {
	if resolver.Value(src, key) != "" {
		return "set"
	}
	return "not set"
}

func bucket(src resolver.Source) string {
	if v := resolver.Value(src, resolver.KeyR2BucketName); v != "" {
		return v
	}
	return resolver.DefaultBucketName + " (default)"
}

func optional(src resolver.Source, key string) string {
	if v := resolver.Value(src, key); v != "" {
		return v
	}
	return "not set (optional)"
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
