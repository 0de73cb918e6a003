package resolver

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Backend identifies one of the two object-storage providers.
type Backend int

const (
	BackendCloudinary Backend = iota
	BackendR2
)

func (b Backend) String() string {
	switch b {
	case BackendR2:
		return "r2"
	case BackendCloudinary:
		return "cloudinary"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// DisplayName returns the provider name shown to operators.
func (b Backend) DisplayName() string {
	switch b {
	case BackendR2:
		return "Cloudflare R2"
	case BackendCloudinary:
		return "Cloudinary"
	default:
		return b.String()
	}
}

func (b Backend) MarshalText() ([]byte, error) {
	switch b {
	case BackendR2, BackendCloudinary:
		return []byte(b.String()), nil
	default:
		return nil, fmt.Errorf("unknown backend %d", int(b))
	}
}

func (b *Backend) UnmarshalText(text []byte) error {
	switch string(text) {
	case "r2":
		*b = BackendR2
	case "cloudinary":
		*b = BackendCloudinary
	default:
		return fmt.Errorf("unknown backend %q", string(text))
	}
	return nil
}

// BackendStatus describes one backend. Enabled reports whether it receives new
// writes; Configured whether every required key is present and non-empty.
type BackendStatus struct {
	Enabled    bool     `json:"enabled"`
	Configured bool     `json:"configured"`
	Missing    []string `json:"missing"`
}

// Result is the outcome of a single resolution.
type Result struct {
	R2         BackendStatus `json:"r2"`
	Cloudinary BackendStatus `json:"cloudinary"`
	Active     Backend       `json:"active"`
	Ready      bool          `json:"ready"`
}

// Status returns the status record of b.
func (r Result) Status(b Backend) BackendStatus {
	if b == BackendR2 {
		return r.R2
	}
	return r.Cloudinary
}

// Resolve derives the backend statuses and the active selection from src.
// A nil src is treated as having every key absent.
func Resolve(src Source) Result {
	active := BackendCloudinary
	if Value(src, KeyUseR2) == flagEnabled {
		active = BackendR2
	}

	res := Result{
		R2:         backendStatus(src, r2Required),
		Cloudinary: backendStatus(src, cloudinaryRequired),
		Active:     active,
	}
	res.R2.Enabled = active == BackendR2
	res.Cloudinary.Enabled = active == BackendCloudinary
	res.Ready = res.Status(active).Configured

	return res
}

func backendStatus(src Source, required []string) BackendStatus {
	missing := make([]string, 0, len(required))
	for _, key := range required {
		if err := validation.Validate(Value(src, key), validation.Required); err != nil {
			missing = append(missing, key)
		}
	}

	return BackendStatus{
		Configured: len(missing) == 0,
		Missing:    missing,
	}
}
