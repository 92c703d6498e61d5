package handlers

import (
	"context"
	"net/http"

	sessionRepo "letsheal/database/repository/session"
	"letsheal/models"
	"letsheal/services/listing"
	"letsheal/services/remote"

	"github.com/gin-gonic/gin"
)

// DirectoryAPI searches the public therapist directory.
type DirectoryAPI interface {
	SearchTherapists(ctx context.Context, token string, q remote.TherapistQuery) ([]models.TherapistProfile, error)
}

// TherapistHandler serves the public "find a therapist" page.
type TherapistHandler struct {
	api    DirectoryAPI
	images ImageResolver
	errs   errorResponder
}

func NewTherapistHandler(api DirectoryAPI, images ImageResolver, store sessionRepo.Store) *TherapistHandler {
	return &TherapistHandler{api: api, images: images, errs: errorResponder{sessions: store}}
}

// List searches therapists. ?hospital= narrows to one hospital by name and
// ?sort=name_asc|name_desc orders by therapist name; ?specialty= and ?gender= are
// passed through to the backend search.
func (h *TherapistHandler) List(c *gin.Context) {
	state, err := bindListState(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	if hospital := c.Query("hospital"); hospital != "" {
		state.Category = hospital
	}
	q := remote.TherapistQuery{
		Search:    state.SearchTerm,
		Specialty: c.Query("specialty"),
		Gender:    c.Query("gender"),
	}
	therapists, err := h.api.SearchTherapists(c.Request.Context(), sessionToken(c), q)
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	filtered := listing.Apply(therapists, listing.DirectorySchema, listing.DirectorySort(state))
	for i := range filtered {
		filtered[i].Image = h.images.Resolve(filtered[i].Image)
	}
	c.JSON(http.StatusOK, gin.H{"therapists": filtered, "total": len(therapists)})
}
