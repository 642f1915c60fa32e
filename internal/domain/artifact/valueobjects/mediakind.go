package valueobjects

import "strings"

type MediaKind string

const (
	MediaKindAudio MediaKind = "audio"
	MediaKindVideo MediaKind = "video"
)

var validMediaKinds = map[MediaKind]bool{
	MediaKindAudio: true,
	MediaKindVideo: true,
}

func (k MediaKind) String() string {
	return string(k)
}

func (k MediaKind) IsValid() bool {
	return validMediaKinds[k]
}

// MediaKindFromContentType derives the kind from the upload's declared MIME
// type ("audio/wav", "video/mp4"). Anything else is rejected.
func MediaKindFromContentType(contentType string) (MediaKind, bool) {
	switch {
	case strings.HasPrefix(contentType, "audio/"):
		return MediaKindAudio, true
	case strings.HasPrefix(contentType, "video/"):
		return MediaKindVideo, true
	default:
		return "", false
	}
}

// NewMediaKind parses a stored media kind string.
func NewMediaKind(s string) (MediaKind, bool) {
	kind := MediaKind(s)
	return kind, kind.IsValid()
}
