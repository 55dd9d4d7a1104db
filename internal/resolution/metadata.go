package resolution

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"audioproxy/internal/models"
	"audioproxy/internal/services"
)

// MetadataAssembler turns a resolved song into a full metadata record
type MetadataAssembler struct {
	client services.SearchClient
}

// NewMetadataAssembler creates a new metadata assembler
func NewMetadataAssembler(client services.SearchClient) *MetadataAssembler {
	return &MetadataAssembler{client: client}
}

// Assemble fetches song and album details for match. Missing fields fall
// back to the Unknown* defaults; the album track number falls back to
// numberHint when the album listing cannot confirm it.
func (a *MetadataAssembler) Assemble(ctx context.Context, match *models.MatchResult, numberHint *int) (*models.ResolvedTrack, error) {
	track := &models.ResolvedTrack{
		TrackName:    models.UnknownTrack,
		Artist:       models.UnknownArtist,
		AlbumName:    models.UnknownAlbum,
		SongURL:      match.URL,
		GeniusSongID: match.SongID,
		Source:       models.SourceGenius,
	}

	if match.SongID == "" {
		slog.Warn("Matched hit has no song ID, returning defaults", "url", match.URL)
		track.AlbumTrackNumber = formatHint(numberHint)
		return track, nil
	}

	detail, err := a.client.GetSongDetail(ctx, match.SongID)
	if err != nil {
		return nil, fmt.Errorf("fetch song %s: %w", match.SongID, err)
	}

	if detail.Title != "" {
		track.TrackName = detail.Title
	}
	if artists := joinArtists(detail.PrimaryArtistNames); artists != "" {
		track.Artist = artists
	}

	albumID := ""
	if detail.Album != nil {
		if detail.Album.Name != "" {
			track.AlbumName = detail.Album.Name
		}
		albumID = detail.Album.ID
	}

	number := ""
	if albumID != "" {
		number = a.lookupTrackNumber(ctx, albumID, match.SongID)
	}
	if number == "" {
		number = formatHint(numberHint)
	}
	track.AlbumTrackNumber = number

	return track, nil
}

// lookupTrackNumber scans the album listing for songID. Failures degrade to
// an empty result.
func (a *MetadataAssembler) lookupTrackNumber(ctx context.Context, albumID, songID string) string {
	tracks, err := a.client.GetAlbumTracks(ctx, albumID)
	if err != nil {
		slog.Warn("Failed to fetch album tracks",
			"albumID", albumID,
			"error", err)
		return ""
	}

	for _, entry := range tracks {
		if entry.SongID == songID && entry.Number != nil {
			return strconv.Itoa(*entry.Number)
		}
	}
	return ""
}

// ExtractRelationship joins the full titles of every song listed under
// relationshipType with ", ". Absent structure yields "".
func ExtractRelationship(detail *services.SongDetail, relationshipType string) string {
	if detail == nil {
		return ""
	}

	var titles []string
	for _, rel := range detail.Relationships {
		if rel.RelationshipType != relationshipType {
			continue
		}
		for _, song := range rel.Songs {
			if song.FullTitle != "" {
				titles = append(titles, song.FullTitle)
			}
		}
	}

	return strings.Join(titles, ", ")
}

func joinArtists(artists []string) string {
	names := make([]string, 0, len(artists))
	for _, artist := range artists {
		if artist = strings.TrimSpace(artist); artist != "" {
			names = append(names, artist)
		}
	}
	return strings.Join(names, ", ")
}

func formatHint(hint *int) string {
	if hint == nil {
		return ""
	}
	return strconv.Itoa(*hint)
}
