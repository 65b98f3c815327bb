package valueobjects

import "fmt"

// MediaKind distinguishes image and video evidence.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

func (m MediaKind) String() string {
	return string(m)
}

func (m MediaKind) IsValid() bool {
	return m == MediaImage || m == MediaVideo
}

func NewMediaKind(s string) (MediaKind, error) {
	m := MediaKind(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid media kind: %s", s)
	}
	return m, nil
}

// MediaTag marks evidence as before/after service, or carries a free
// descriptive tag.
type MediaTag string

const (
	MediaTagBefore MediaTag = "before"
	MediaTagAfter  MediaTag = "after"
)

func (t MediaTag) String() string {
	return string(t)
}
