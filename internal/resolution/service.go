package resolution

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"audioproxy/internal/models"
	"audioproxy/internal/services"
)

// TrackResolutionService resolves Genius metadata from artist/track pairs or
// from bare filenames. It holds no per-request state and is safe for
// concurrent use.
type TrackResolutionService struct {
	client        services.SearchClient
	matcher       *Matcher
	disambiguator *Disambiguator
	assembler     *MetadataAssembler
	hintLimit     int
}

// NewTrackResolutionService wires the resolution pipeline around client
func NewTrackResolutionService(client services.SearchClient) *TrackResolutionService {
	matcher := NewMatcher(client)
	return &TrackResolutionService{
		client:        client,
		matcher:       matcher,
		disambiguator: NewDisambiguator(NewHitCounter(client), matcher),
		assembler:     NewMetadataAssembler(client),
		hintLimit:     DefaultHintLimit,
	}
}

// SearchByArtistAndTrack finds the song URL and ID for a known artist and
// track. Hits that fail containment produce a MatchResult carrying the
// not-found sentinels rather than an error.
func (s *TrackResolutionService) SearchByArtistAndTrack(ctx context.Context, artist, track string) (*models.MatchResult, error) {
	artist = strings.TrimSpace(artist)
	track = strings.TrimSpace(track)
	if artist == "" || track == "" {
		return nil, fmt.Errorf("%w: artist and track name are required", ErrInvalidInput)
	}

	match, err := s.matcher.ResolveBestMatch(ctx, artist, track)
	if err != nil {
		return nil, err
	}

	slog.Info("Resolved artist and track",
		"artist", artist,
		"track", track,
		"match", match.Kind.String(),
		"url", match.URL)

	return match, nil
}

// SearchByFilename resolves a full metadata record from a filename such as
// "Madvillain - 03 - Accordion.mp3"
func (s *TrackResolutionService) SearchByFilename(ctx context.Context, filename string) (*models.ResolvedTrack, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return nil, fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}

	tokens, err := Tokenize(StripAudioExtension(filename))
	if err != nil {
		return nil, err
	}

	numberHint, tokens := ExtractAlbumNumberHint(tokens, s.hintLimit)

	first, second, err := candidatePair(tokens)
	if err != nil {
		return nil, err
	}

	match, err := s.disambiguator.Resolve(ctx, first.Clean, second.Clean)
	if err != nil {
		return nil, err
	}

	resolved, err := s.assembler.Assemble(ctx, match, numberHint)
	if err != nil {
		if services.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %v", ErrSongNotFound, err)
		}
		return nil, err
	}

	slog.Info("Resolved filename",
		"filename", filename,
		"artist", resolved.Artist,
		"track", resolved.TrackName,
		"match", match.Kind.String(),
		"songID", resolved.GeniusSongID)

	return resolved, nil
}

// GetSampleInfo lists the songs sampled by songID and the songs sampling it
func (s *TrackResolutionService) GetSampleInfo(ctx context.Context, songID string) (*models.SampleInfo, error) {
	songID = strings.TrimSpace(songID)
	if songID == "" {
		return nil, fmt.Errorf("%w: song ID is required", ErrInvalidInput)
	}

	detail, err := s.client.GetSongDetail(ctx, songID)
	if err != nil {
		if services.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %v", ErrSongNotFound, err)
		}
		return nil, fmt.Errorf("fetch song %s: %w", songID, err)
	}

	return &models.SampleInfo{
		Samples:    ExtractRelationship(detail, models.RelationshipSamples),
		SampledBys: ExtractRelationship(detail, models.RelationshipSampledIn),
	}, nil
}

// Health checks the upstream song database
func (s *TrackResolutionService) Health(ctx context.Context) error {
	return s.client.Health(ctx)
}
