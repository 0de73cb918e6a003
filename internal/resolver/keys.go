package resolver

const (
	// KeyUseR2 selects the R2 backend only when set to the exact string "true".
	KeyUseR2 = "USE_R2_FOR_NEW_UPLOADS"

	KeyR2Endpoint       = "R2_ENDPOINT"
	KeyR2AccessKeyID    = "R2_ACCESS_KEY_ID"
	KeyR2SecretKey      = "R2_SECRET_ACCESS_KEY"
	KeyR2BucketName     = "R2_BUCKET_NAME"
	KeyR2PublicURL      = "R2_PUBLIC_URL"
	KeyCloudinaryName   = "CLOUDINARY_CLOUD_NAME"
	KeyCloudinaryKey    = "CLOUDINARY_API_KEY"
	KeyCloudinarySecret = "CLOUDINARY_API_SECRET"
)

// DefaultBucketName is used when R2_BUCKET_NAME is not set.
const DefaultBucketName = "flashfire-storage"

const flagEnabled = "true"

var (
	r2Required         = []string{KeyR2Endpoint, KeyR2AccessKeyID, KeyR2SecretKey}
	r2Optional         = []string{KeyR2BucketName, KeyR2PublicURL}
	cloudinaryRequired = []string{KeyCloudinaryName, KeyCloudinaryKey, KeyCloudinarySecret}
)

// RequiredKeys returns the keys that must be non-empty for b to be configured.
func RequiredKeys(b Backend) []string {
	switch b {
	case BackendR2:
		return append([]string(nil), r2Required...)
	case BackendCloudinary:
		return append([]string(nil), cloudinaryRequired...)
	default:
		return nil
	}
}

// OptionalKeys returns the keys b reads that never affect its configured state.
func OptionalKeys(b Backend) []string {
	if b == BackendR2 {
		return append([]string(nil), r2Optional...)
	}
	return nil
}
