package services

import "strconv"

// Genius wraps every payload in a meta/response envelope

type geniusMeta struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
}

// geniusEnvelope is implemented by every decoded response. Genius always
// sends meta.status, so zero means nothing was decoded.
type geniusEnvelope interface {
	metaStatus() int
}

type geniusSearchEnvelope struct {
	Meta     geniusMeta `json:"meta"`
	Response struct {
		Hits []geniusHit `json:"hits"`
	} `json:"response"`
}

type geniusSongEnvelope struct {
	Meta     geniusMeta `json:"meta"`
	Response struct {
		Song *geniusSong `json:"song"`
	} `json:"response"`
}

type geniusAlbumTracksEnvelope struct {
	Meta     geniusMeta `json:"meta"`
	Response struct {
		Tracks []geniusAlbumTrack `json:"tracks"`
	} `json:"response"`
}

func (e *geniusSearchEnvelope) metaStatus() int      { return e.Meta.Status }
func (e *geniusSongEnvelope) metaStatus() int        { return e.Meta.Status }
func (e *geniusAlbumTracksEnvelope) metaStatus() int { return e.Meta.Status }

type geniusHit struct {
	Index  string           `json:"index"`
	Type   string           `json:"type"`
	Result *geniusHitResult `json:"result"`
}

type geniusHitResult struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	FullTitle string `json:"full_title"`
}

type geniusArtist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type geniusAlbum struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type geniusSong struct {
	ID                int64                    `json:"id"`
	Title             string                   `json:"title"`
	FullTitle         string                   `json:"full_title"`
	URL               string                   `json:"url"`
	PrimaryArtist     *geniusArtist            `json:"primary_artist"`
	PrimaryArtists    []geniusArtist           `json:"primary_artists"`
	Album             *geniusAlbum             `json:"album"`
	SongRelationships []geniusSongRelationship `json:"song_relationships"`
}

type geniusSongRelationship struct {
	RelationshipType string       `json:"relationship_type"`
	Type             string       `json:"type"`
	Songs            []geniusSong `json:"songs"`
}

type geniusAlbumTrack struct {
	Number *int        `json:"number"`
	Song   *geniusSong `json:"song"`
}

// formatID renders a numeric Genius ID, treating zero as absent
func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

func (h geniusHit) toSearchHit() SearchHit {
	if h.Result == nil {
		return SearchHit{}
	}
	return SearchHit{
		URL:    h.Result.URL,
		SongID: formatID(h.Result.ID),
	}
}

func (s *geniusSong) toSongDetail() *SongDetail {
	detail := &SongDetail{
		ID:    formatID(s.ID),
		Title: s.Title,
		URL:   s.URL,
	}

	for _, artist := range s.PrimaryArtists {
		if artist.Name != "" {
			detail.PrimaryArtistNames = append(detail.PrimaryArtistNames, artist.Name)
		}
	}
	if len(detail.PrimaryArtistNames) == 0 && s.PrimaryArtist != nil && s.PrimaryArtist.Name != "" {
		detail.PrimaryArtistNames = []string{s.PrimaryArtist.Name}
	}

	if s.Album != nil {
		detail.Album = &AlbumRef{
			ID:   formatID(s.Album.ID),
			Name: s.Album.Name,
		}
	}

	for _, rel := range s.SongRelationships {
		relType := rel.RelationshipType
		if relType == "" {
			relType = rel.Type
		}
		converted := SongRelationship{RelationshipType: relType}
		for _, related := range rel.Songs {
			converted.Songs = append(converted.Songs, RelatedSong{FullTitle: related.FullTitle})
		}
		detail.Relationships = append(detail.Relationships, converted)
	}

	return detail
}

func (t geniusAlbumTrack) toAlbumTrack() AlbumTrack {
	track := AlbumTrack{Number: t.Number}
	if t.Song != nil {
		track.SongID = formatID(t.Song.ID)
	}
	return track
}
