package service

import (
	"context"
	"io"

	"github.com/itbsclubs/clubdesk/pkg/clubapi"
)

// Upload pushes a file to the platform's media store and returns its URL.
func (s *Services) Upload(ctx context.Context, filename string, content io.Reader) (*clubapi.UploadResponse, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}

	res, err := apiSession.Upload(ctx, filename, content)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return res, nil
}
