package storage

import (
	"strings"

	"github.com/angeloszaimis/storagecheck/internal/resolver"
)

const cloudinaryDeliveryHost = "https://res.cloudinary.com"

// CloudinaryConfig holds the Cloudinary account settings.
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// CloudinaryConfigFrom reads the Cloudinary settings from src.
func CloudinaryConfigFrom(src resolver.Source) CloudinaryConfig {
	return CloudinaryConfig{
		CloudName: resolver.Value(src, resolver.KeyCloudinaryName),
		APIKey:    resolver.Value(src, resolver.KeyCloudinaryKey),
		APISecret: resolver.Value(src, resolver.KeyCloudinarySecret),
	}
}

// DeliveryURL returns the public URL of an image uploaded under publicID.
func (c CloudinaryConfig) DeliveryURL(publicID string) string {
	return cloudinaryDeliveryHost + "/" + c.CloudName + "/image/upload/" + strings.TrimLeft(publicID, "/")
}
