package lending

import (
	"errors"
	"strings"
)

const EvidencePhotoCount = 4

var (
	ErrInvalidStatus        = errors.New("invalid borrowing record status")
	ErrEvidenceCount        = errors.New("exactly 4 evidence photos are required")
	ErrInvalidEvidencePhoto = errors.New("invalid evidence photo data format")
)

// Evidence is the set of exactly 4 condition-verification photos captured
// at borrow or return time. Presence and data-URI format are validated;
// image content is not inspected.
type Evidence struct {
	photos []string
}

func NewEvidence(photos []string) (Evidence, error) {
	if len(photos) != EvidencePhotoCount {
		return Evidence{}, ErrEvidenceCount
	}
	for _, p := range photos {
		if !strings.HasPrefix(p, "data:image") {
			return Evidence{}, ErrInvalidEvidencePhoto
		}
	}
	copied := make([]string, EvidencePhotoCount)
	copy(copied, photos)
	return Evidence{photos: copied}, nil
}

func (e Evidence) Photos() []string {
	out := make([]string, len(e.photos))
	copy(out, e.photos)
	return out
}

func (e Evidence) IsEmpty() bool {
	return len(e.photos) == 0
}

// ReconstructEvidence rebuilds evidence from storage without re-validation.
func ReconstructEvidence(photos []string) Evidence {
	copied := make([]string, len(photos))
	copy(copied, photos)
	return Evidence{photos: copied}
}
