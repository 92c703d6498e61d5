package models

// Blog is a blog post.
type Blog struct {
	ID         FlexID `json:"id"`
	Title      string `json:"blog_title"`
	Content    string `json:"blog_content"`
	Image      string `json:"blog_image"`
	AuthorName string `json:"blog_author_name"`
	Author     FlexID `json:"blog_author"`
	CreatedAt  string `json:"blog_created_at"`
	UpdatedAt  string `json:"blog_updated_at"`
}

// BlogInput is the editable part of a blog post.
type BlogInput struct {
	Title   string `json:"blog_title" binding:"required"`
	Content string `json:"blog_content" binding:"required"`
	Image   string `json:"blog_image,omitempty"`
}

// BlogDetail is a blog post prepared for reading.
type BlogDetail struct {
	Blog
	ImageURL    string `json:"imageUrl"`
	ContentHTML string `json:"contentHtml"`
}
