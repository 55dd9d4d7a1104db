package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// SearchClient defines the operations the resolver needs from the song
// database. Any field of a returned document may be empty.
type SearchClient interface {
	// Search returns hits for a free-text query in API order
	Search(ctx context.Context, query string) ([]SearchHit, error)

	// GetSongDetail fetches a single song document
	GetSongDetail(ctx context.Context, songID string) (*SongDetail, error)

	// GetAlbumTracks fetches the track listing of an album
	GetAlbumTracks(ctx context.Context, albumID string) ([]AlbumTrack, error)

	// Health checks if the API is reachable with the configured credentials
	Health(ctx context.Context) error
}

// SearchHit is one result of a search query
type SearchHit struct {
	URL    string `json:"url"`
	SongID string `json:"id,omitempty"`
}

// SongDetail holds the song fields used for metadata assembly
type SongDetail struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title"`
	URL                string             `json:"url"`
	PrimaryArtistNames []string           `json:"primary_artist_names"`
	Album              *AlbumRef          `json:"album,omitempty"`
	Relationships      []SongRelationship `json:"relationships,omitempty"`
}

// AlbumRef identifies the album a song belongs to
type AlbumRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SongRelationship groups related songs by relationship type
// ("samples", "sampled_in", ...)
type SongRelationship struct {
	RelationshipType string        `json:"relationship_type"`
	Songs            []RelatedSong `json:"songs"`
}

// RelatedSong is a song referenced from a relationship
type RelatedSong struct {
	FullTitle string `json:"full_title"`
}

// AlbumTrack is one entry of an album track listing
type AlbumTrack struct {
	Number *int   `json:"number,omitempty"`
	SongID string `json:"song_id"`
}

// GeniusError represents a transport or decoding failure talking to Genius
type GeniusError struct {
	Operation  string
	Message    string
	StatusCode int
	Err        error
}

func (e *GeniusError) Error() string {
	msg := "genius " + e.Operation + " failed"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += " - " + e.Err.Error()
	}
	return msg
}

func (e *GeniusError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a Genius 404
func IsNotFound(err error) bool {
	var geniusErr *GeniusError
	return errors.As(err, &geniusErr) && geniusErr.StatusCode == http.StatusNotFound
}
