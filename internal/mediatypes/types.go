package mediatypes

// Kind classifies a gallery record.
type Kind string

const (
	// KindImage represents an image file.
	KindImage Kind = "image"
	// KindVideo represents a video file.
	KindVideo Kind = "video"
)

// ParseKind returns the Kind for a query value and whether it is valid.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindImage, KindVideo:
		return Kind(s), true
	}
	return "", false
}

// VideoExtensions maps supported video extensions (lowercase, with dot).
var VideoExtensions = map[string]bool{
	".mp4":  true,
	".webm": true,
}

// ImageExtensions maps supported image extensions (lowercase, with dot).
var ImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// MimeTypes maps supported extensions to their MIME types.
var MimeTypes = map[string]string{
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// GetMimeType returns the MIME type for a lowercase extension with the
// leading dot, or "application/octet-stream" when unrecognized.
func GetMimeType(ext string) string {
	if mime, ok := MimeTypes[ext]; ok {
		return mime
	}
	return "application/octet-stream"
}

// DurationBucket is a coarse classification of video length used for
// filtering: short (<60s), medium (60-300s inclusive), long (>300s).
type DurationBucket string

const (
	// BucketShort matches videos shorter than a minute.
	BucketShort DurationBucket = "short"
	// BucketMedium matches videos between one and five minutes inclusive.
	BucketMedium DurationBucket = "medium"
	// BucketLong matches videos longer than five minutes.
	BucketLong DurationBucket = "long"
)

// ParseDurationBucket returns the DurationBucket for a query value and
// whether it is valid.
func ParseDurationBucket(s string) (DurationBucket, bool) {
	switch DurationBucket(s) {
	case BucketShort, BucketMedium, BucketLong:
		return DurationBucket(s), true
	}
	return "", false
}

// BucketFor classifies a duration in whole seconds.
func BucketFor(seconds int) DurationBucket {
	switch {
	case seconds < 60:
		return BucketShort
	case seconds <= 300:
		return BucketMedium
	default:
		return BucketLong
	}
}
