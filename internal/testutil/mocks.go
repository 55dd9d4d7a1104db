package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"audioproxy/internal/services"
)

// MockSearchClient is a mock implementation of services.SearchClient for testing
type MockSearchClient struct {
	mock.Mock
}

func (m *MockSearchClient) Search(ctx context.Context, query string) ([]services.SearchHit, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.SearchHit), args.Error(1)
}

func (m *MockSearchClient) GetSongDetail(ctx context.Context, songID string) (*services.SongDetail, error) {
	args := m.Called(ctx, songID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.SongDetail), args.Error(1)
}

func (m *MockSearchClient) GetAlbumTracks(ctx context.Context, albumID string) ([]services.AlbumTrack, error) {
	args := m.Called(ctx, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.AlbumTrack), args.Error(1)
}

func (m *MockSearchClient) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Helper functions for setting up mock expectations

// ExpectSearch sets up expectation for a single Search call
func ExpectSearch(client *MockSearchClient, query string, hits []services.SearchHit, err error) *mock.Call {
	return client.On("Search", mock.Anything, query).Return(hits, err).Once()
}

// ExpectSongDetail sets up expectation for GetSongDetail
func ExpectSongDetail(client *MockSearchClient, songID string, detail *services.SongDetail, err error) *mock.Call {
	return client.On("GetSongDetail", mock.Anything, songID).Return(detail, err)
}

// ExpectAlbumTracks sets up expectation for GetAlbumTracks
func ExpectAlbumTracks(client *MockSearchClient, albumID string, tracks []services.AlbumTrack, err error) *mock.Call {
	return client.On("GetAlbumTracks", mock.Anything, albumID).Return(tracks, err)
}
