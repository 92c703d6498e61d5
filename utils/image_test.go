package utils

import (
	"testing"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageResolverAbsolute(t *testing.T) {
	r := NewImageResolver("http://localhost:8000/", DefaultProfileImage, nil)

	assert.Equal(t, DefaultProfileImage, r.Resolve(""))
	assert.Equal(t, "http://localhost:8000/media/a.png", r.Resolve("/media/a.png"))
	assert.Equal(t, "http://localhost:8000/media/a.png", r.Resolve("media/a.png"))
	assert.Equal(t, "https://cdn.example.com/x.jpg", r.Resolve("https://cdn.example.com/x.jpg"))
	assert.Equal(t, "data:image/png;base64,AAAA", r.Resolve("data:image/png;base64,AAAA"))
}

func TestImageResolverCloudinaryFetch(t *testing.T) {
	cld, err := cloudinary.NewFromParams("demo", "key", "secret")
	require.NoError(t, err)
	r := NewImageResolver("http://localhost:8000", DefaultProfileImage, cld)

	u := r.Resolve("/media/a.png")
	assert.Contains(t, u, "demo/image/fetch/")
	assert.Contains(t, u, "c_fill")

	assert.Equal(t, DefaultProfileImage, r.Resolve(""))
	assert.Equal(t, "data:image/png;base64,AAAA", r.Resolve("data:image/png;base64,AAAA"))
}
