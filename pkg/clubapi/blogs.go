package clubapi

import (
	"context"
	"fmt"
	"net/http"
)

// BlogFeed returns a page of the cross-club blog feed.
func (s *Session) BlogFeed(ctx context.Context, page, size int) (*BlogPage, error) {
	var out BlogPage
	path := fmt.Sprintf("/blogs/club/all?page=%d&size=%d", page, size)
	if err := s.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBlog publishes a blog post for the caller's club.
func (s *Session) CreateBlog(ctx context.Context, req CreateBlogRequest) (*Blog, error) {
	var out Blog
	if err := s.jsonRequest(ctx, http.MethodPost, "/blogs", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBlog updates a blog post.
func (s *Session) UpdateBlog(ctx context.Context, id int64, req CreateBlogRequest) error {
	return s.jsonRequest(ctx, http.MethodPut, fmt.Sprintf("/blogs/%d", id), req, nil)
}

// DeleteBlog removes a blog post.
func (s *Session) DeleteBlog(ctx context.Context, id int64) error {
	return s.jsonRequest(ctx, http.MethodDelete, fmt.Sprintf("/blogs/%d", id), nil, nil)
}

// LikeBlog toggles the caller's like on a post and returns the new count.
func (s *Session) LikeBlog(ctx context.Context, id int64) (*LikeResponse, error) {
	var out LikeResponse
	if err := s.postNoBody(ctx, fmt.Sprintf("/blogs/%d/like", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CommentBlog adds a comment to a post.
func (s *Session) CommentBlog(ctx context.Context, id int64, contenu string) (*BlogComment, error) {
	var out BlogComment
	err := s.jsonRequest(ctx, http.MethodPost, fmt.Sprintf("/blogs/%d/comment", id),
		CommentRequest{Contenu: contenu}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
