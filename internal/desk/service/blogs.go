package service

import (
	"context"

	"github.com/itbsclubs/clubdesk/internal/desk/notify"
	"github.com/itbsclubs/clubdesk/pkg/clubapi"
)

const cacheBlogFeed = "blogs:feed"

// BlogFeed returns one page of the cross-club blog feed. Only the first
// page is cached for offline display; deeper pages always hit the backend.
func (s *Services) BlogFeed(ctx context.Context, page, size int) (*clubapi.BlogPage, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}

	if page == 0 {
		posts, err := listWithCache(ctx, s, cacheBlogFeed, func(ctx context.Context) ([]clubapi.Blog, error) {
			feed, err := apiSession.BlogFeed(ctx, page, size)
			if err != nil {
				return nil, err
			}
			return feed.Content, nil
		})
		if err != nil {
			return nil, err
		}
		return &clubapi.BlogPage{Content: posts, TotalElements: len(posts)}, nil
	}

	feed, err := apiSession.BlogFeed(ctx, page, size)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return feed, nil
}

// CreateBlog publishes a post for the moderator's club.
func (s *Services) CreateBlog(ctx context.Context, req clubapi.CreateBlogRequest) (*clubapi.Blog, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}

	post, err := apiSession.CreateBlog(ctx, req)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Article publié : "+post.Titre))
	return post, nil
}

// UpdateBlog updates a post.
func (s *Services) UpdateBlog(ctx context.Context, id int64, req clubapi.CreateBlogRequest) error {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return err
	}

	if err := apiSession.UpdateBlog(ctx, id, req); err != nil {
		return s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Article mis à jour."))
	return nil
}

// DeleteBlog deletes a post.
func (s *Services) DeleteBlog(ctx context.Context, id int64) error {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return err
	}

	if err := apiSession.DeleteBlog(ctx, id); err != nil {
		return s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Article supprimé."))
	return nil
}

// LikeBlog toggles the caller's like on a post.
func (s *Services) LikeBlog(ctx context.Context, id int64) (*clubapi.LikeResponse, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}

	res, err := apiSession.LikeBlog(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return res, nil
}

// CommentBlog adds a comment to a post.
func (s *Services) CommentBlog(ctx context.Context, id int64, contenu string) (*clubapi.BlogComment, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}

	comment, err := apiSession.CommentBlog(ctx, id, contenu)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Commentaire publié."))
	return comment, nil
}

// FilterFeed narrows a feed page down by club and category. Zero values
// leave the corresponding dimension unfiltered; order is preserved.
func FilterFeed(posts []clubapi.Blog, clubID int64, categorie string) []clubapi.Blog {
	out := make([]clubapi.Blog, 0, len(posts))
	for _, p := range posts {
		if clubID != 0 && p.ClubID != clubID {
			continue
		}
		if categorie != "" && p.Categorie != categorie {
			continue
		}
		out = append(out, p)
	}
	return out
}
