package utils

import (
	"fmt"
	"strings"

	"letsheal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"go.uber.org/zap"
)

// DefaultProfileImage is served when a profile has no usable picture.
const DefaultProfileImage = "/static/default-profile.png"

const thumbnailTransformation = "c_fill,g_face,h_200,w_200"

// ImageResolver turns backend image references into absolute URLs. Relative media
// paths are joined onto the backend base URL; when Cloudinary is configured the
// result is wrapped in a fetch-delivery URL so clients get a resized copy.
type ImageResolver struct {
	baseURL  string
	fallback string
	cld      *cloudinary.Cloudinary
}

func NewImageResolver(baseURL, fallback string, cld *cloudinary.Cloudinary) *ImageResolver {
	return &ImageResolver{
		baseURL:  strings.TrimRight(baseURL, "/"),
		fallback: fallback,
		cld:      cld,
	}
}

// Cloudinary initializes the optional Cloudinary client from configuration.
// It returns nil, nil when no cloud name is configured.
func Cloudinary() (*cloudinary.Cloudinary, error) {
	cloudName := config.AppConfig.CloudinaryCloudName
	if cloudName == "" {
		return nil, nil
	}
	cld, err := cloudinary.NewFromParams(cloudName, config.AppConfig.CloudinaryAPIKey, config.AppConfig.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}
	return cld, nil
}

// Absolute resolves ref against the backend without any CDN wrapping.
func (r *ImageResolver) Absolute(ref string) string {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return r.fallback
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"), strings.HasPrefix(ref, "data:image"):
		return ref
	case strings.HasPrefix(ref, "/"):
		return r.baseURL + ref
	default:
		return r.baseURL + "/" + ref
	}
}

// Resolve returns the URL clients should load for ref.
func (r *ImageResolver) Resolve(ref string) string {
	abs := r.Absolute(ref)
	if r.cld == nil || abs == r.fallback || strings.HasPrefix(abs, "data:") {
		return abs
	}
	img, err := r.cld.Image(abs)
	if err != nil {
		zap.L().Warn("cloudinary image asset failed", zap.String("ref", ref), zap.Error(err))
		return abs
	}
	img.DeliveryType = api.Fetch
	img.Transformation = thumbnailTransformation
	u, err := img.String()
	if err != nil {
		zap.L().Warn("cloudinary url build failed", zap.String("ref", ref), zap.Error(err))
		return abs
	}
	return u
}
