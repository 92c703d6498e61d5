package remote

import (
	"context"
	"net/http"

	"letsheal/models"
)

// Blogs lists every published post.
func (c *Client) Blogs(ctx context.Context, token string) ([]models.Blog, error) {
	return listOf[models.Blog](ctx, c, apiPath("search_blog"), token)
}

// MyBlogs lists the posts written by the token's owner.
func (c *Client) MyBlogs(ctx context.Context, token string) ([]models.Blog, error) {
	return listOf[models.Blog](ctx, c, apiPath("get_my_blog"), token)
}

func (c *Client) Blog(ctx context.Context, token string, blogID int64) (*models.Blog, error) {
	var out models.Blog
	if err := c.call(ctx, http.MethodGet, apiPath("blog_detail/%d", blogID), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBlog(ctx context.Context, token string, in models.BlogInput) (*models.Blog, error) {
	var out models.Blog
	if err := c.call(ctx, http.MethodPost, apiPath("create_blog"), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBlog(ctx context.Context, token string, blogID int64, in models.BlogInput) (*models.Blog, error) {
	var out models.Blog
	if err := c.call(ctx, http.MethodPut, apiPath("update_blog/%d", blogID), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBlog(ctx context.Context, token string, blogID int64) error {
	return c.call(ctx, http.MethodDelete, apiPath("delete_blog/%d", blogID), token, nil, nil)
}
