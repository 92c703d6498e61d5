package blog

import (
	"context"
	"errors"
	"testing"

	"letsheal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockAPI struct {
	BlogsFunc   func(ctx context.Context, token string) ([]models.Blog, error)
	BlogFunc    func(ctx context.Context, token string, id int64) (*models.Blog, error)
	UpdateFunc  func(ctx context.Context, token string, id int64, in models.BlogInput) (*models.Blog, error)
	DeletedIDs  []int64
	CreatedWith []models.BlogInput
}

func (m *MockAPI) Blogs(ctx context.Context, token string) ([]models.Blog, error) {
	if m.BlogsFunc != nil {
		return m.BlogsFunc(ctx, token)
	}
	return nil, errors.New("BlogsFunc not implemented in mock")
}

func (m *MockAPI) MyBlogs(ctx context.Context, token string) ([]models.Blog, error) {
	return m.Blogs(ctx, token)
}

func (m *MockAPI) Blog(ctx context.Context, token string, id int64) (*models.Blog, error) {
	if m.BlogFunc != nil {
		return m.BlogFunc(ctx, token, id)
	}
	return nil, errors.New("BlogFunc not implemented in mock")
}

func (m *MockAPI) CreateBlog(_ context.Context, _ string, in models.BlogInput) (*models.Blog, error) {
	m.CreatedWith = append(m.CreatedWith, in)
	return &models.Blog{ID: 1, Title: in.Title, Content: in.Content}, nil
}

func (m *MockAPI) UpdateBlog(ctx context.Context, token string, id int64, in models.BlogInput) (*models.Blog, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, token, id, in)
	}
	return &models.Blog{ID: models.FlexID(id), Title: in.Title}, nil
}

func (m *MockAPI) DeleteBlog(_ context.Context, _ string, id int64) error {
	m.DeletedIDs = append(m.DeletedIDs, id)
	return nil
}

type prefixResolver struct{}

func (prefixResolver) Resolve(ref string) string {
	if ref == "" {
		return ""
	}
	return "https://cdn.test/" + ref
}

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("# Title\nline one\nline two\n\n<script>alert(1)</script>")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Title</h1>")
	assert.Contains(t, html, "line one<br>")
	assert.NotContains(t, html, "<script>")
}

func TestListFiltersAndResolvesImages(t *testing.T) {
	api := &MockAPI{BlogsFunc: func(context.Context, string) ([]models.Blog, error) {
		return []models.Blog{
			{ID: 1, Title: "Sleep hygiene", Image: "media/a.png"},
			{ID: 2, Title: "Grief", AuthorName: "Dr. Sleep"},
			{ID: 3, Title: "Diet"},
		}, nil
	}}

	got, err := NewService(api, prefixResolver{}).List(context.Background(), "", models.FilterState{SearchTerm: "sleep"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "https://cdn.test/media/a.png", got[0].Image)
	assert.Equal(t, "", got[1].Image)
}

func TestDetailRendersContent(t *testing.T) {
	api := &MockAPI{BlogFunc: func(_ context.Context, _ string, id int64) (*models.Blog, error) {
		return &models.Blog{ID: models.FlexID(id), Title: "T", Content: "**bold**", Image: "x.png"}, nil
	}}

	d, err := NewService(api, prefixResolver{}).Detail(context.Background(), "tok", "5")
	require.NoError(t, err)
	assert.Equal(t, models.FlexID(5), d.ID)
	assert.Contains(t, d.ContentHTML, "<strong>bold</strong>")
	assert.Equal(t, "https://cdn.test/x.png", d.ImageURL)

	_, err = NewService(api, prefixResolver{}).Detail(context.Background(), "tok", "five")
	assert.Error(t, err)
}

func TestMutationsForwardIDs(t *testing.T) {
	api := &MockAPI{}
	svc := NewService(api, prefixResolver{})
	ctx := context.Background()

	_, err := svc.Create(ctx, "tok", models.BlogInput{Title: "T", Content: "C"})
	require.NoError(t, err)
	assert.Len(t, api.CreatedWith, 1)

	updated, err := svc.Update(ctx, "tok", "8", models.BlogInput{Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, models.FlexID(8), updated.ID)

	require.NoError(t, svc.Delete(ctx, "tok", "9"))
	assert.Equal(t, []int64{9}, api.DeletedIDs)
	assert.Error(t, svc.Delete(ctx, "tok", ""))
}
