package models

// SourceGenius tags records resolved through the Genius API
const SourceGenius = "Genius"

// NotFound is reported in place of a URL or song ID when no hit qualified
const NotFound = "Not found"

// Defaults applied when Genius omits a field
const (
	UnknownTrack  = "Unknown Track"
	UnknownArtist = "Unknown Artist"
	UnknownAlbum  = "Unknown Album"
)

// Relationship types understood by the sample lookup
const (
	RelationshipSamples   = "samples"
	RelationshipSampledIn = "sampled_in"
)

// MatchKind classifies how a search hit satisfied the containment check
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchFallback
	MatchExact
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchFallback:
		return "fallback"
	default:
		return "none"
	}
}

// MatchResult is the outcome of evaluating one (artist, track) ordering
// against the search hits for it.
type MatchResult struct {
	Artist string    `json:"artist"`
	Track  string    `json:"trackName"`
	URL    string    `json:"songUrl"`
	SongID string    `json:"geniusSongId"`
	Kind   MatchKind `json:"-"`
}

// NewNotFoundMatch returns a result carrying the not-found sentinels
func NewNotFoundMatch(artist, track string) *MatchResult {
	return &MatchResult{
		Artist: artist,
		Track:  track,
		URL:    NotFound,
		SongID: NotFound,
		Kind:   MatchNone,
	}
}

// Found reports whether an exact or fallback hit was selected
func (m *MatchResult) Found() bool {
	return m != nil && m.Kind != MatchNone
}

// Exact reports whether both artist and track matched
func (m *MatchResult) Exact() bool {
	return m != nil && m.Kind == MatchExact
}

// ResolvedTrack is the full metadata record produced for a filename
type ResolvedTrack struct {
	TrackName        string `json:"trackName"`
	Artist           string `json:"artist"`
	AlbumName        string `json:"albumName"`
	AlbumTrackNumber string `json:"albumTrackNumber"`
	SongURL          string `json:"songUrl"`
	GeniusSongID     string `json:"geniusSongId"`
	Source           string `json:"source"`
}

// SampleInfo lists songs a track samples and songs that sample it, each as
// a comma-joined string of full titles.
type SampleInfo struct {
	Samples    string `json:"samples"`
	SampledBys string `json:"sampledBys"`
}
