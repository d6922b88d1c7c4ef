package normalize

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/bandcamp-meta/internal/bandcamp"
	"github.com/handiism/bandcamp-meta/internal/http"
	ioutils "github.com/handiism/bandcamp-meta/internal/io"
	"github.com/handiism/bandcamp-meta/internal/model"
	"github.com/handiism/bandcamp-meta/internal/names"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a processing progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Config holds the knobs for a Manager.
type Config struct {
	// MaxConcurrent bounds how many releases are processed in
	// parallel. Values below 1 are treated as 1.
	MaxConcurrent int

	// Retries is how many times a failed fetch is reattempted.
	Retries int

	// RetryCooldown is the wait before the first reattempt. It
	// doubles on every further retry.
	RetryCooldown time.Duration

	// AlbumArtist overrides the release-level artist credit and the
	// per-track artist deduction. Empty means no override.
	AlbumArtist string
}

// Manager coordinates release normalization.
//
// The pure pipeline lives in Normalize; the Process methods wrap it
// with fetching and parsing for URLs and local files.
type Manager struct {
	cfg          Config
	httpClient   *http.Client
	parser       *bandcamp.Parser
	discography  *bandcamp.Discography
	imageService *ioutils.ImageService

	onProgress func(ProgressEvent)
}

// NewManager creates a new Manager.
//
// client carries the user agent and timeout configuration. onProgress
// may be nil when no progress reporting is wanted.
func NewManager(client *http.Client, cfg Config, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		cfg:          cfg,
		httpClient:   client,
		parser:       bandcamp.NewParser(),
		discography:  bandcamp.NewDiscography(),
		imageService: ioutils.NewImageService(),
		onProgress:   onProgress,
	}
}

// Normalize runs the full pipeline over raw release metadata and
// assembles the normalized record.
//
// The release resolver rewrites all track titles first, voting across
// the whole release; each title is then decomposed on its own.
// Normalize performs no I/O.
func (m *Manager) Normalize(raw model.RawRelease) (*model.ReleaseInfo, error) {
	resolver := names.NewResolver(raw)
	resolver.Resolve()

	albumArtist := raw.AlbumArtist
	if m.cfg.AlbumArtist != "" {
		albumArtist = m.cfg.AlbumArtist
	}

	jsonTracks := resolver.JSONTracks()
	titles := resolver.Titles()

	tracks := make([]model.TrackInfo, 0, len(jsonTracks))
	for i, rawTrack := range jsonTracks {
		if m.cfg.AlbumArtist != "" {
			rawTrack.AlbumArtist = m.cfg.AlbumArtist
		}
		track, err := names.MakeTrack(rawTrack, titles[i])
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track.Info())
	}

	album := resolver.Album
	if resolver.AlbumInTitles != "" {
		album = resolver.AlbumInTitles
	}

	return &model.ReleaseInfo{
		URL:         raw.URL,
		Album:       strings.TrimSpace(album),
		AlbumArtist: albumArtist,
		Label:       resolver.Label,
		Catalognum:  resolver.Catalognum(),
		Date:        raw.Date,
		CoverURL:    raw.Image,
		Singleton:   resolver.Singleton,
		Tracks:      tracks,
	}, nil
}

// ProcessURL fetches a release page and returns its normalized record.
func (m *Manager) ProcessURL(ctx context.Context, releaseURL string) (*model.ReleaseInfo, error) {
	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching release: %s", releaseURL), Level: LevelVerbose})

	htmlContent, err := m.fetchWithRetry(ctx, releaseURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", releaseURL, err)
	}

	raw, err := m.parser.ParseReleasePage(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", releaseURL, err)
	}
	if raw.URL == "" {
		raw.URL = releaseURL
	}

	info, err := m.Normalize(raw)
	if err != nil {
		return nil, err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Normalized: %s - %s (%d tracks)", info.AlbumArtist, info.Album, len(info.Tracks)), Level: LevelSuccess})
	return info, nil
}

// ProcessFile normalizes an offline input: a saved release page or a
// bare JSON-LD payload.
//
// Files ending in .json are parsed as JSON-LD; anything else is parsed
// as page HTML.
func (m *Manager) ProcessFile(ctx context.Context, path string) (*model.ReleaseInfo, error) {
	m.progress(ProgressEvent{Message: fmt.Sprintf("Reading release: %s", path), Level: LevelVerbose})

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw model.RawRelease
	if strings.EqualFold(filepath.Ext(path), ".json") {
		raw, err = m.parser.ParseReleaseJSON(data)
	} else {
		raw, err = m.parser.ParseReleasePage(string(data))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	info, err := m.Normalize(raw)
	if err != nil {
		return nil, err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Normalized: %s - %s (%d tracks)", info.AlbumArtist, info.Album, len(info.Tracks)), Level: LevelSuccess})
	return info, nil
}

// Process normalizes one input, which may be a release URL or a local
// file path.
func (m *Manager) Process(ctx context.Context, input string) (*model.ReleaseInfo, error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return m.ProcessURL(ctx, input)
	}
	return m.ProcessFile(ctx, input)
}

// ProcessAll normalizes every input and returns the records in input
// order. Inputs may mix release URLs and local files.
//
// Releases are processed concurrently up to Config.MaxConcurrent; the
// first failure cancels the remaining work.
func (m *Manager) ProcessAll(ctx context.Context, inputs []string) ([]*model.ReleaseInfo, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency())

	results := make([]*model.ReleaseInfo, len(inputs))
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			info, err := m.Process(ctx, input)
			if err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error processing %s: %v", input, err), Level: LevelError})
				return err
			}
			results[i] = info
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// DiscoverReleaseURLs expands an artist page URL into the release URLs
// of the whole discography. A URL already pointing at a release is
// returned as is.
func (m *Manager) DiscoverReleaseURLs(ctx context.Context, inputURL string) ([]string, error) {
	parsedURL, err := url.Parse(inputURL)
	if err != nil {
		return nil, err
	}

	if strings.Contains(parsedURL.Path, "/album/") || strings.Contains(parsedURL.Path, "/track/") {
		return []string{inputURL}, nil
	}

	musicURL := fmt.Sprintf("%s://%s/music", parsedURL.Scheme, parsedURL.Host)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching discography: %s", musicURL), Level: LevelVerbose})

	htmlContent, err := m.fetchWithRetry(ctx, musicURL)
	if err != nil {
		return nil, err
	}

	relativeURLs, err := m.discography.GetReleaseURLs(htmlContent)
	if err != nil {
		return nil, err
	}

	absoluteURLs := make([]string, 0, len(relativeURLs))
	for _, relURL := range relativeURLs {
		absoluteURLs = append(absoluteURLs, fmt.Sprintf("%s://%s%s", parsedURL.Scheme, parsedURL.Host, relURL))
	}

	return absoluteURLs, nil
}

// FetchCover downloads the release artwork and fits it for ID3
// embedding. Returns nil bytes when the release has no cover URL.
func (m *Manager) FetchCover(ctx context.Context, release *model.ReleaseInfo, maxDim int) ([]byte, error) {
	if release.CoverURL == "" {
		return nil, nil
	}

	var artwork []byte
	var err error
	for tries := 0; ; tries++ {
		artwork, err = m.httpClient.DownloadBytes(ctx, release.CoverURL)
		if err == nil {
			break
		}
		if tries >= m.cfg.Retries {
			return nil, fmt.Errorf("downloading cover for %s: %w", release.Album, err)
		}
		if !m.waitForRetry(ctx, tries) {
			return nil, ctx.Err()
		}
	}

	cover, err := m.imageService.PrepareCover(ctx, artwork, maxDim)
	if err != nil {
		// An undecodable image still embeds; players deal with it.
		m.progress(ProgressEvent{Message: fmt.Sprintf("Could not prepare cover for %s: %v", release.Album, err), Level: LevelWarning})
		return artwork, nil
	}

	return cover, nil
}

func (m *Manager) concurrency() int {
	if m.cfg.MaxConcurrent < 1 {
		return 1
	}
	return m.cfg.MaxConcurrent
}

func (m *Manager) fetchWithRetry(ctx context.Context, pageURL string) (string, error) {
	var content string
	var err error
	for tries := 0; ; tries++ {
		content, err = m.httpClient.GetString(ctx, pageURL)
		if err == nil {
			return content, nil
		}
		if tries >= m.cfg.Retries {
			return "", err
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d for %s", tries+1, m.cfg.Retries, pageURL), Level: LevelWarning})
		if !m.waitForRetry(ctx, tries) {
			return "", ctx.Err()
		}
	}
}

func (m *Manager) waitForRetry(ctx context.Context, tries int) bool {
	// The cooldown doubles on every further retry.
	cooldown := m.cfg.RetryCooldown * time.Duration(1<<tries)
	select {
	case <-ctx.Done():
		return false
	case <-time.After(cooldown):
		return true
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
