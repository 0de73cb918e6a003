package storage

import (
	"context"
	"strings"

	"github.com/angeloszaimis/storagecheck/internal/resolver"
)

// Destination describes where new uploads land for the active backend of res.
func Destination(src resolver.Source, res resolver.Result) string {
	if res.Active == resolver.BackendR2 {
		cfg := R2ConfigFrom(src)
		if cfg.PublicURL == "" && cfg.Endpoint == "" {
			return "bucket " + cfg.Bucket
		}
		return strings.TrimSuffix(PublicURL(cfg, ""), "/")
	}

	cfg := CloudinaryConfigFrom(src)
	if cfg.CloudName == "" {
		return "cloud <unset>"
	}
	return strings.TrimSuffix(cfg.DeliveryURL(""), "/")
}

// ActiveR2Client builds the R2 client when R2 is the active, configured
// backend. It returns a nil client and nil error for any other result.
// Errors describe settings that are present but unusable, such as an
// endpoint without an http(s) scheme.
func ActiveR2Client(ctx context.Context, src resolver.Source, res resolver.Result) (*R2Client, error) {
	if res.Active != resolver.BackendR2 || !res.Ready {
		return nil, nil
	}
	return NewR2Client(ctx, R2ConfigFrom(src))
}
