package remote

import (
	"context"
	"net/http"
	"net/url"

	"letsheal/models"
)

// TherapistQuery narrows /search_therapist. Empty fields are not sent.
type TherapistQuery struct {
	Search    string
	Specialty string
	Gender    string
}

func (q TherapistQuery) encode() string {
	v := url.Values{}
	for key, val := range map[string]string{
		"search":    q.Search,
		"specialty": q.Specialty,
		"gender":    q.Gender,
	} {
		if val != "" {
			v.Set(key, val)
		}
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// SearchTherapists lists therapists matching q.
func (c *Client) SearchTherapists(ctx context.Context, token string, q TherapistQuery) ([]models.TherapistProfile, error) {
	return listOf[models.TherapistProfile](ctx, c, apiPath("search_therapist")+q.encode(), token)
}

func (c *Client) DeleteTherapist(ctx context.Context, token string, therapistID int64) error {
	return c.call(ctx, http.MethodDelete, apiPath("delete_therapist/%d", therapistID), token, nil, nil)
}

// TherapistRequests lists therapist applications in every state.
func (c *Client) TherapistRequests(ctx context.Context, token string) ([]models.TherapistRequest, error) {
	return listOf[models.TherapistRequest](ctx, c, apiPath("list_therapist_request"), token)
}

func (c *Client) TherapistRequest(ctx context.Context, token string, requestID int64) (*models.TherapistRequest, error) {
	var out models.TherapistRequest
	if err := c.call(ctx, http.MethodGet, apiPath("requested_therapist_info/%d", requestID), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProcessTherapistRequest approves or declines an application and returns the
// backend's message. A 2xx answer with success false is still a refusal.
func (c *Client) ProcessTherapistRequest(ctx context.Context, token string, requestID int64, d models.RequestDecision) (string, error) {
	var out struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := c.call(ctx, http.MethodPost, apiPath("process_therapist_request/%d", requestID), token, d, &out); err != nil {
		return "", err
	}
	if out.Success != nil && !*out.Success {
		msg := out.Error
		if msg == "" {
			msg = out.Message
		}
		return "", &ServerError{Status: http.StatusBadRequest, Message: msg}
	}
	return out.Message, nil
}
