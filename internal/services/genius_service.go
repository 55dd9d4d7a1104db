package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"audioproxy/internal/config"
)

// geniusService implements SearchClient against the Genius REST API
type geniusService struct {
	client  *resty.Client
	limiter *rate.Limiter
	timeout time.Duration
}

// NewGeniusService creates a new Genius client. Every request carries the
// API key as a bearer token, waits on the rate limiter and is bounded by the
// configured timeout.
func NewGeniusService(cfg config.GeniusConfig) SearchClient {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.APIKey,
		TokenType:   "Bearer",
	})
	httpClient := oauth2.NewClient(context.Background(), tokenSource)

	client := resty.NewWithClient(httpClient).
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}

	return &geniusService{
		client:  client,
		limiter: limiter,
		timeout: cfg.Timeout,
	}
}

// Search runs a free-text search and returns hits in API order
func (s *geniusService) Search(ctx context.Context, query string) ([]SearchHit, error) {
	var envelope geniusSearchEnvelope
	err := s.get(ctx, "search", "/search", func(req *resty.Request) {
		req.SetQueryParam("q", query)
	}, &envelope)
	if err != nil {
		return nil, err
	}

	hits := make([]SearchHit, 0, len(envelope.Response.Hits))
	for _, hit := range envelope.Response.Hits {
		hits = append(hits, hit.toSearchHit())
	}

	slog.Debug("Genius search completed", "query", query, "hits", len(hits))
	return hits, nil
}

// GetSongDetail fetches /songs/{id}
func (s *geniusService) GetSongDetail(ctx context.Context, songID string) (*SongDetail, error) {
	var envelope geniusSongEnvelope
	err := s.get(ctx, "get_song", "/songs/{id}", func(req *resty.Request) {
		req.SetPathParam("id", songID)
	}, &envelope)
	if err != nil {
		return nil, err
	}

	if envelope.Response.Song == nil {
		return nil, &GeniusError{
			Operation: "get_song",
			Message:   "response has no song for id " + songID,
		}
	}

	return envelope.Response.Song.toSongDetail(), nil
}

// GetAlbumTracks fetches /albums/{id}/tracks
func (s *geniusService) GetAlbumTracks(ctx context.Context, albumID string) ([]AlbumTrack, error) {
	var envelope geniusAlbumTracksEnvelope
	err := s.get(ctx, "get_album_tracks", "/albums/{id}/tracks", func(req *resty.Request) {
		req.SetPathParam("id", albumID)
	}, &envelope)
	if err != nil {
		return nil, err
	}

	tracks := make([]AlbumTrack, 0, len(envelope.Response.Tracks))
	for _, track := range envelope.Response.Tracks {
		tracks = append(tracks, track.toAlbumTrack())
	}
	return tracks, nil
}

// Health issues a minimal search to verify connectivity and credentials
func (s *geniusService) Health(ctx context.Context) error {
	var envelope geniusSearchEnvelope
	return s.get(ctx, "health", "/search", func(req *resty.Request) {
		req.SetQueryParams(map[string]string{
			"q":        "genius",
			"per_page": "1",
		})
	}, &envelope)
}

// get performs a rate-limited, time-bounded GET and decodes the body into
// result. Bodies are always decoded as JSON; a 2xx body that does not decode
// into a Genius envelope is reported as a malformed response.
func (s *geniusService) get(ctx context.Context, operation, path string, prepare func(*resty.Request), result geniusEnvelope) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return &GeniusError{
			Operation: operation,
			Message:   "rate limiter wait failed",
			Err:       err,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := s.client.R().
		SetContext(ctx).
		SetResult(result).
		ForceContentType("application/json")
	prepare(req)

	resp, err := req.Get(path)
	if err != nil {
		if resp != nil && resp.IsSuccess() {
			return &GeniusError{
				Operation:  operation,
				Message:    "malformed response",
				StatusCode: resp.StatusCode(),
				Err:        err,
			}
		}
		if isTimeout(err) {
			return &GeniusError{
				Operation: operation,
				Message:   "request timed out",
				Err:       err,
			}
		}
		return &GeniusError{
			Operation: operation,
			Message:   "request failed",
			Err:       err,
		}
	}

	if resp.StatusCode() == http.StatusNotFound {
		return &GeniusError{
			Operation:  operation,
			Message:    "resource not found",
			StatusCode: resp.StatusCode(),
		}
	}

	if !resp.IsSuccess() {
		return &GeniusError{
			Operation:  operation,
			Message:    fmt.Sprintf("API returned status %d", resp.StatusCode()),
			StatusCode: resp.StatusCode(),
		}
	}

	if result.metaStatus() == 0 {
		return &GeniusError{
			Operation:  operation,
			Message:    "malformed response",
			StatusCode: resp.StatusCode(),
		}
	}

	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
