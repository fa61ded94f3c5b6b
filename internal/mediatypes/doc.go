// Package mediatypes defines the media kind classification, the supported
// file extension sets, and the duration bucket scheme shared by the
// scanner, the cache builder, and the HTTP read surface.
//
// Supported file types:
//   - Images: jpg, jpeg, png, webp
//   - Videos: mp4, webm
package mediatypes
