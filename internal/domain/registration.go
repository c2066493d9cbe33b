package domain

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

// MaxImageBytes is the maximum decoded size of a profile image.
const MaxImageBytes = 5 << 20 // 5 MiB

// MinPasswordLength is the minimum accepted password length. Password
// strength beyond length is the identity service's concern.
const MinPasswordLength = 8

var (
	// emailRegex checks for the basic local@domain.tld shape. The identity
	// service performs the authoritative validation on signup.
	emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

	dataURIRegex = regexp.MustCompile(`^data:(image/\w+);base64,(.+)$`)
)

// RegistrationRequest carries the input of one signup attempt. It is
// constructed from the request body and discarded when the request ends.
type RegistrationRequest struct {
	Email        string
	Username     string
	Password     string
	ProfileImage string // data:<mime>;base64,<payload>
}

// ProfileImageData is the decoded form of the submitted profile image.
type ProfileImageData struct {
	ContentType string
	Bytes       []byte
}

// Validate checks the request fields without touching any external system.
// It returns the first violated rule as a sentinel error.
func (r *RegistrationRequest) Validate() error {
	if r.Email == "" || r.Username == "" || r.Password == "" || r.ProfileImage == "" {
		return ErrMissingFields
	}
	if !emailRegex.MatchString(r.Email) {
		return ErrInvalidEmail
	}
	if len(r.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if !dataURIRegex.MatchString(r.ProfileImage) {
		return ErrInvalidImageEncoding
	}
	return nil
}

// DecodeImage decodes the data-URI profile image and enforces the size cap.
// The declared MIME type is cross-checked against the sniffed content so a
// relabelled payload cannot slip through as an image.
func (r *RegistrationRequest) DecodeImage() (*ProfileImageData, error) {
	match := dataURIRegex.FindStringSubmatch(r.ProfileImage)
	if match == nil {
		return nil, ErrInvalidImageEncoding
	}
	declared := match[1]

	raw, err := base64.StdEncoding.DecodeString(match[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImageEncoding, err)
	}
	if len(raw) > MaxImageBytes {
		return nil, ErrImageTooLarge
	}

	if !strings.HasPrefix(http.DetectContentType(raw), "image/") {
		return nil, ErrImageContentMismatch
	}

	return &ProfileImageData{ContentType: declared, Bytes: raw}, nil
}
