package remote

import (
	"context"
	"net/http"

	"letsheal/models"
)

func (c *Client) Customers(ctx context.Context, token string) ([]models.Customer, error) {
	return listOf[models.Customer](ctx, c, apiPath("list_customer"), token)
}

func (c *Client) Customer(ctx context.Context, token string, customerID int64) (*models.Customer, error) {
	var out models.Customer
	if err := c.call(ctx, http.MethodGet, apiPath("view_customer_profile/%d", customerID), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, token string, customerID int64) error {
	return c.call(ctx, http.MethodDelete, apiPath("delete_customer/%d", customerID), token, nil, nil)
}

func (c *Client) Hospital(ctx context.Context, token string, hospitalID int64) (*models.Hospital, error) {
	var out models.Hospital
	if err := c.call(ctx, http.MethodGet, apiPath("view_specific_hospital_info/%d", hospitalID), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateHospital(ctx context.Context, token string, in models.HospitalInput) (*models.Hospital, error) {
	var out models.Hospital
	if err := c.call(ctx, http.MethodPost, apiPath("create_hospital"), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateHospital(ctx context.Context, token string, hospitalID int64, in models.HospitalInput) (*models.Hospital, error) {
	var out models.Hospital
	if err := c.call(ctx, http.MethodPut, apiPath("update_hospital/%d", hospitalID), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteHospital(ctx context.Context, token string, hospitalID int64) error {
	return c.call(ctx, http.MethodDelete, apiPath("delete_hospital/%d", hospitalID), token, nil, nil)
}
