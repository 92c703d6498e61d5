package handlers

import (
	"net/http"

	"letsheal/models"
	"letsheal/services/listing"
	"letsheal/services/remote"
	"letsheal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListTherapists filters by name, email, specialization or hospital and by
// availability status.
func (h *AdminHandler) ListTherapists(c *gin.Context) {
	state, err := bindListState(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	therapists, err := h.api.SearchTherapists(c.Request.Context(), sessionToken(c), remote.TherapistQuery{})
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	filtered := listing.Apply(therapists, listing.TherapistSchema, state)
	for i := range filtered {
		filtered[i].Image = h.images.Resolve(filtered[i].Image)
	}
	c.JSON(http.StatusOK, gin.H{"therapists": filtered, "total": len(therapists)})
}

func (h *AdminHandler) GetTherapist(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	therapist, err := h.api.TherapistProfile(c.Request.Context(), sessionToken(c), id)
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	therapist.Image = h.images.Resolve(therapist.Image)
	c.JSON(http.StatusOK, therapist)
}

func (h *AdminHandler) DeleteTherapist(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	if err := h.api.DeleteTherapist(c.Request.Context(), sessionToken(c), id); err != nil {
		h.errs.respond(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Therapist deleted successfully"})
}

// ListTherapistRequests returns applications with their hospital names resolved.
// ?status= is pending, approved, declined or all.
func (h *AdminHandler) ListTherapistRequests(c *gin.Context) {
	state, err := bindListState(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	ctx, token := c.Request.Context(), sessionToken(c)
	reqs, err := h.api.TherapistRequests(ctx, token)
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	known := h.knownHospitals(c)
	for i := range reqs {
		reqs[i].ResolveHospitals(known)
	}
	c.JSON(http.StatusOK, gin.H{
		"requests": listing.Apply(reqs, listing.TherapistRequestSchema, state),
		"total":    len(reqs),
	})
}

func (h *AdminHandler) GetTherapistRequest(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	req, err := h.api.TherapistRequest(c.Request.Context(), sessionToken(c), id)
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	req.ResolveHospitals(h.knownHospitals(c))
	c.JSON(http.StatusOK, req)
}

// ProcessTherapistRequest approves or declines an application.
func (h *AdminHandler) ProcessTherapistRequest(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	var in models.RequestDecision
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	msg, err := h.api.ProcessTherapistRequest(c.Request.Context(), sessionToken(c), id, in)
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

// knownHospitals fetches the hospital list for name resolution. A failure only
// costs the names, so it is logged and the fallback names are used.
func (h *AdminHandler) knownHospitals(c *gin.Context) []models.Hospital {
	hospitals, err := h.api.Hospitals(c.Request.Context(), sessionToken(c))
	if err != nil {
		utils.GetLogger().Warn("Hospital names unavailable for therapist requests", zap.Error(err))
		return nil
	}
	return hospitals
}
