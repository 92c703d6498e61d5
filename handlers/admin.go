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

// AdminAPI is the admin part of the remote client.
type AdminAPI interface {
	Customers(ctx context.Context, token string) ([]models.Customer, error)
	Customer(ctx context.Context, token string, customerID int64) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, token string, customerID int64) error
	Hospitals(ctx context.Context, token string) ([]models.Hospital, error)
	Hospital(ctx context.Context, token string, hospitalID int64) (*models.Hospital, error)
	CreateHospital(ctx context.Context, token string, in models.HospitalInput) (*models.Hospital, error)
	UpdateHospital(ctx context.Context, token string, hospitalID int64, in models.HospitalInput) (*models.Hospital, error)
	DeleteHospital(ctx context.Context, token string, hospitalID int64) error

	SearchTherapists(ctx context.Context, token string, q remote.TherapistQuery) ([]models.TherapistProfile, error)
	TherapistProfile(ctx context.Context, token string, therapistID int64) (*models.TherapistProfile, error)
	DeleteTherapist(ctx context.Context, token string, therapistID int64) error

	TherapistRequests(ctx context.Context, token string) ([]models.TherapistRequest, error)
	TherapistRequest(ctx context.Context, token string, requestID int64) (*models.TherapistRequest, error)
	ProcessTherapistRequest(ctx context.Context, token string, requestID int64, d models.RequestDecision) (string, error)
}

// AdminHandler serves the admin customer, therapist, hospital and therapist
// request screens.
type AdminHandler struct {
	api    AdminAPI
	images ImageResolver
	errs   errorResponder
}

func NewAdminHandler(api AdminAPI, images ImageResolver, store sessionRepo.Store) *AdminHandler {
	return &AdminHandler{api: api, images: images, errs: errorResponder{sessions: store}}
}

// ListCustomers filters by name, email or phone and by active status.
func (h *AdminHandler) ListCustomers(c *gin.Context) {
	state, err := bindListState(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	customers, err := h.api.Customers(c.Request.Context(), sessionToken(c))
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	filtered := listing.Apply(customers, listing.CustomerSchema, state)
	for i := range filtered {
		filtered[i].Image = h.images.Resolve(filtered[i].Image)
	}
	c.JSON(http.StatusOK, gin.H{"customers": filtered, "total": len(customers)})
}

func (h *AdminHandler) GetCustomer(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	customer, err := h.api.Customer(c.Request.Context(), sessionToken(c), id)
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	customer.Image = h.images.Resolve(customer.Image)
	c.JSON(http.StatusOK, customer)
}

func (h *AdminHandler) DeleteCustomer(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	if err := h.api.DeleteCustomer(c.Request.Context(), sessionToken(c), id); err != nil {
		h.errs.respond(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// ListHospitals searches by name or address.
func (h *AdminHandler) ListHospitals(c *gin.Context) {
	state, err := bindListState(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	hospitals, err := h.api.Hospitals(c.Request.Context(), sessionToken(c))
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"hospitals": listing.Apply(hospitals, listing.HospitalSchema, state),
		"total":     len(hospitals),
	})
}

func (h *AdminHandler) GetHospital(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	hospital, err := h.api.Hospital(c.Request.Context(), sessionToken(c), id)
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	c.JSON(http.StatusOK, hospital)
}

func (h *AdminHandler) CreateHospital(c *gin.Context) {
	var in models.HospitalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.api.CreateHospital(c.Request.Context(), sessionToken(c), in)
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) UpdateHospital(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	var in models.HospitalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.api.UpdateHospital(c.Request.Context(), sessionToken(c), id, in)
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteHospital(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	if err := h.api.DeleteHospital(c.Request.Context(), sessionToken(c), id); err != nil {
		h.errs.respond(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hospital deleted successfully"})
}
