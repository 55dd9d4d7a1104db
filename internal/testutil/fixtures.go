package testutil

import (
	"audioproxy/internal/services"
)

// GeniusHit creates a mock Genius search hit
func GeniusHit(songID int64, url string) map[string]interface{} {
	return map[string]interface{}{
		"index": "song",
		"type":  "song",
		"result": map[string]interface{}{
			"id":  songID,
			"url": url,
		},
	}
}

// GeniusSearchResponse creates a mock Genius search response
func GeniusSearchResponse(hits ...map[string]interface{}) map[string]interface{} {
	if hits == nil {
		hits = []map[string]interface{}{}
	}
	return map[string]interface{}{
		"meta": map[string]interface{}{"status": 200},
		"response": map[string]interface{}{
			"hits": hits,
		},
	}
}

// GeniusSongResponse wraps a song object in the Genius envelope
func GeniusSongResponse(song map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"meta": map[string]interface{}{"status": 200},
		"response": map[string]interface{}{
			"song": song,
		},
	}
}

// GeniusSong creates a mock Genius song object with an album and no
// relationships
func GeniusSong(songID int64, title, artist string, albumID int64, albumName string) map[string]interface{} {
	return map[string]interface{}{
		"id":    songID,
		"title": title,
		"url":   "https://genius.com/song/" + title,
		"primary_artist": map[string]interface{}{
			"name": artist,
		},
		"album": map[string]interface{}{
			"id":   albumID,
			"name": albumName,
		},
	}
}

// GeniusRelationship creates a song_relationships entry
func GeniusRelationship(relationshipType string, fullTitles ...string) map[string]interface{} {
	songs := make([]map[string]interface{}, 0, len(fullTitles))
	for _, title := range fullTitles {
		songs = append(songs, map[string]interface{}{"full_title": title})
	}
	return map[string]interface{}{
		"relationship_type": relationshipType,
		"type":              relationshipType,
		"songs":             songs,
	}
}

// GeniusAlbumTrack creates an album track listing entry
func GeniusAlbumTrack(number int, songID int64) map[string]interface{} {
	return map[string]interface{}{
		"number": number,
		"song": map[string]interface{}{
			"id": songID,
		},
	}
}

// GeniusAlbumTracksResponse creates a mock /albums/{id}/tracks response
func GeniusAlbumTracksResponse(tracks ...map[string]interface{}) map[string]interface{} {
	if tracks == nil {
		tracks = []map[string]interface{}{}
	}
	return map[string]interface{}{
		"meta": map[string]interface{}{"status": 200},
		"response": map[string]interface{}{
			"tracks": tracks,
		},
	}
}

// Hits builds search hits from URL/ID pairs: Hits("url1", "id1", "url2", "id2")
func Hits(pairs ...string) []services.SearchHit {
	hits := make([]services.SearchHit, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		hits = append(hits, services.SearchHit{URL: pairs[i], SongID: pairs[i+1]})
	}
	return hits
}

// SongDetailBuilder provides a fluent interface for creating song documents
type SongDetailBuilder struct {
	detail *services.SongDetail
}

// NewSongDetailBuilder creates a builder with only an ID set
func NewSongDetailBuilder(songID string) *SongDetailBuilder {
	return &SongDetailBuilder{
		detail: &services.SongDetail{ID: songID},
	}
}

// WithTitle sets the song title
func (b *SongDetailBuilder) WithTitle(title string) *SongDetailBuilder {
	b.detail.Title = title
	return b
}

// WithArtists sets the primary artist names
func (b *SongDetailBuilder) WithArtists(artists ...string) *SongDetailBuilder {
	b.detail.PrimaryArtistNames = artists
	return b
}

// WithAlbum sets the album reference
func (b *SongDetailBuilder) WithAlbum(albumID, name string) *SongDetailBuilder {
	b.detail.Album = &services.AlbumRef{ID: albumID, Name: name}
	return b
}

// WithRelationship appends a relationship of the given type
func (b *SongDetailBuilder) WithRelationship(relationshipType string, fullTitles ...string) *SongDetailBuilder {
	rel := services.SongRelationship{RelationshipType: relationshipType}
	for _, title := range fullTitles {
		rel.Songs = append(rel.Songs, services.RelatedSong{FullTitle: title})
	}
	b.detail.Relationships = append(b.detail.Relationships, rel)
	return b
}

// Build returns the song document
func (b *SongDetailBuilder) Build() *services.SongDetail {
	return b.detail
}

// TrackNumber returns a pointer to n for AlbumTrack fixtures
func TrackNumber(n int) *int {
	return &n
}
