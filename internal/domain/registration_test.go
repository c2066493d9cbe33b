package domain

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// pngDataURI builds a data URI around a minimal PNG payload of the given
// total decoded size.
func pngDataURI(t *testing.T, size int) string {
	t.Helper()
	require.GreaterOrEqual(t, size, len(pngHeader))
	payload := append(bytes.Clone(pngHeader), make([]byte, size-len(pngHeader))...)
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)
}

func validRequest(t *testing.T) RegistrationRequest {
	t.Helper()
	return RegistrationRequest{
		Email:        "alice@example.com",
		Username:     "alice",
		Password:     "longenough",
		ProfileImage: pngDataURI(t, 64),
	}
}

func TestRegistrationRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegistrationRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *RegistrationRequest) {}},
		{
			name:    "missing email",
			mutate:  func(r *RegistrationRequest) { r.Email = "" },
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing username",
			mutate:  func(r *RegistrationRequest) { r.Username = "" },
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing password",
			mutate:  func(r *RegistrationRequest) { r.Password = "" },
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing image",
			mutate:  func(r *RegistrationRequest) { r.ProfileImage = "" },
			wantErr: ErrMissingFields,
		},
		{
			name:    "email without at sign",
			mutate:  func(r *RegistrationRequest) { r.Email = "alice.example.com" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email without tld dot",
			mutate:  func(r *RegistrationRequest) { r.Email = "alice@example" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "password length seven",
			mutate:  func(r *RegistrationRequest) { r.Password = "seven77" },
			wantErr: ErrPasswordTooShort,
		},
		{
			name:    "image without data uri prefix",
			mutate:  func(r *RegistrationRequest) { r.ProfileImage = "not-a-data-uri" },
			wantErr: ErrInvalidImageEncoding,
		},
		{
			name: "image with non-image mime",
			mutate: func(r *RegistrationRequest) {
				r.ProfileImage = "data:text/plain;base64,aGVsbG8="
			},
			wantErr: ErrInvalidImageEncoding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDecodeImage(t *testing.T) {
	t.Run("decodes valid png", func(t *testing.T) {
		req := validRequest(t)

		img, err := req.DecodeImage()
		require.NoError(t, err)
		assert.Equal(t, "image/png", img.ContentType)
		assert.Len(t, img.Bytes, 64)
	})

	t.Run("rejects invalid base64", func(t *testing.T) {
		req := validRequest(t)
		req.ProfileImage = "data:image/png;base64,!!!not-base64!!!"

		_, err := req.DecodeImage()
		assert.ErrorIs(t, err, ErrInvalidImageEncoding)
	})

	t.Run("rejects oversized image", func(t *testing.T) {
		req := validRequest(t)
		req.ProfileImage = pngDataURI(t, MaxImageBytes+1)

		_, err := req.DecodeImage()
		assert.ErrorIs(t, err, ErrImageTooLarge)
	})

	t.Run("accepts image at the size cap", func(t *testing.T) {
		req := validRequest(t)
		req.ProfileImage = pngDataURI(t, MaxImageBytes)

		_, err := req.DecodeImage()
		assert.NoError(t, err)
	})

	t.Run("rejects relabelled non-image bytes", func(t *testing.T) {
		req := validRequest(t)
		req.ProfileImage = "data:image/png;base64," +
			base64.StdEncoding.EncodeToString([]byte("<html><body>nope</body></html>"))

		_, err := req.DecodeImage()
		assert.ErrorIs(t, err, ErrImageContentMismatch)
	})
}

func TestNewProfile(t *testing.T) {
	t.Run("rejects empty username", func(t *testing.T) {
		_, err := NewProfile(mustUUID(t), "", "https://cdn.example.com/a.png")
		assert.ErrorIs(t, err, ErrEmptyUsername)
	})

	t.Run("sets creation time", func(t *testing.T) {
		p, err := NewProfile(mustUUID(t), "alice", "https://cdn.example.com/a.png")
		require.NoError(t, err)
		assert.False(t, p.CreatedAt.IsZero())
	})
}
