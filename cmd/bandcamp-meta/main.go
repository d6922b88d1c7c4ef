package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"

	"github.com/handiism/bandcamp-meta/internal/audio"
	"github.com/handiism/bandcamp-meta/internal/config"
	"github.com/handiism/bandcamp-meta/internal/http"
	"github.com/handiism/bandcamp-meta/internal/model"
	"github.com/handiism/bandcamp-meta/internal/normalize"
)

const version = "0.1.0"

var (
	headerColor  = color.New(color.FgHiYellow, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgCyan)
	dimColor     = color.New(color.Faint)
	badgeColor   = color.New(color.FgBlack, color.BgYellow)
)

func main() {
	// Command line flags
	var (
		jsonFlag        = flag.Bool("json", false, "Print normalized records as JSON instead of the report")
		applyFlag       = flag.String("apply", "", "Apply the records to the MP3 files in this directory")
		renameFlag      = flag.Bool("rename", false, "Rename applied files to \"NN. Artist - Title.mp3\"")
		coverFlag       = flag.Bool("cover", false, "Embed cover art when applying")
		playlistFlag    = flag.String("playlist", "", "Write a playlist when applying (m3u, pls, wpl, zpl)")
		albumArtistFlag = flag.String("album-artist", "", "Force this album artist on every track")
		discographyFlag = flag.Bool("discography", false, "Expand artist page URLs into their whole discography")
		concurrencyFlag = flag.Int("concurrency", 0, "Concurrent releases (overrides settings)")
		settingsFlag    = flag.String("settings", "", "Path to settings file")
		timeoutFlag     = flag.Duration("timeout", 0, "HTTP timeout, e.g. 30s (0 uses the default)")
		noColorFlag     = flag.Bool("no-color", false, "Disable colored output")
		quietFlag       = flag.Bool("quiet", false, "Only print errors and the report")
		versionFlag     = flag.Bool("version", false, "Print version and exit")
	)

	flag.Parse()

	if *versionFlag {
		fmt.Printf("bandcamp-meta %s\n", version)
		return
	}

	if flag.NArg() == 0 {
		fmt.Println("bandcamp-meta - Normalize Bandcamp release metadata")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  bandcamp-meta [options] <URL or file>...")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  bandcamp-meta https://artist.bandcamp.com/album/name")
		fmt.Println("  bandcamp-meta -json saved-page.html")
		fmt.Println("  bandcamp-meta -apply ./rips/album -rename -cover https://artist.bandcamp.com/album/name")
		fmt.Println()
		fmt.Println("For interactive mode, use: bandcamp-meta-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *noColorFlag {
		color.NoColor = true
	}

	// Flags that only make sense together with -apply
	if *applyFlag == "" && (*renameFlag || *coverFlag || *playlistFlag != "") {
		fatalf("-rename, -cover and -playlist require -apply")
	}

	var playlistFormat model.PlaylistFormat
	if *playlistFlag != "" {
		var ok bool
		playlistFormat, ok = model.ParsePlaylistFormat(*playlistFlag)
		if !ok {
			fatalf("unknown playlist format %q (want m3u, pls, wpl or zpl)", *playlistFlag)
		}
	}

	// Load settings
	settings := config.DefaultSettings()
	if *settingsFlag != "" {
		var err error
		settings, err = config.Load(*settingsFlag)
		if err != nil {
			fatalf("loading settings: %v", err)
		}
	}
	if *concurrencyFlag > 0 {
		settings.MaxConcurrentReleases = *concurrencyFlag
	}
	if err := settings.Validate(); err != nil {
		fatalf("invalid settings: %v", err)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupted, cancelling...")
		cancel()
	}()

	client := http.NewClientWith(settings.UserAgent, *timeoutFlag)

	cfg := settings.ToManagerConfig()
	cfg.AlbumArtist = *albumArtistFlag

	manager := normalize.NewManager(client, cfg, func(event normalize.ProgressEvent) {
		if *quietFlag && event.Level != normalize.LevelError {
			return
		}
		if event.Level == normalize.LevelVerbose {
			return
		}

		switch event.Level {
		case normalize.LevelError:
			errorColor.Fprintln(os.Stderr, "✗ "+event.Message)
		case normalize.LevelWarning:
			warnColor.Fprintln(os.Stderr, "! "+event.Message)
		case normalize.LevelSuccess:
			successColor.Fprintln(os.Stderr, "✓ "+event.Message)
		default:
			infoColor.Fprintln(os.Stderr, "› "+event.Message)
		}
	})

	inputs := flag.Args()
	if *discographyFlag {
		var expanded []string
		for _, input := range inputs {
			urls, err := manager.DiscoverReleaseURLs(ctx, input)
			if err != nil {
				fatalf("expanding %s: %v", input, err)
			}
			expanded = append(expanded, urls...)
		}
		inputs = expanded
		if !*quietFlag {
			infoColor.Fprintf(os.Stderr, "› Processing %d release(s)\n", len(inputs))
		}
	}

	releases, err := manager.ProcessAll(ctx, inputs)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			os.Exit(130)
		}
		fatalf("%v", err)
	}

	if *jsonFlag {
		printJSON(releases)
	} else {
		for _, release := range releases {
			printRelease(release)
		}
	}

	if *applyFlag != "" {
		if len(releases) != 1 {
			fatalf("-apply works on exactly one release, got %d", len(releases))
		}
		applyRelease(ctx, manager, releases[0], settings, applyOptions{
			dir:            *applyFlag,
			rename:         *renameFlag,
			cover:          *coverFlag,
			playlist:       *playlistFlag != "",
			playlistFormat: playlistFormat,
			quiet:          *quietFlag,
		})
	}
}

type applyOptions struct {
	dir            string
	rename         bool
	cover          bool
	playlist       bool
	playlistFormat model.PlaylistFormat
	quiet          bool
}

// applyRelease writes the normalized record into the MP3 files of a
// directory, with optional cover art, renaming and playlist.
func applyRelease(ctx context.Context, manager *normalize.Manager, release *model.ReleaseInfo, settings *config.Settings, opts applyOptions) {
	var cover []byte
	if opts.cover {
		var err error
		cover, err = manager.FetchCover(ctx, release, settings.CoverMaxSize)
		if err != nil {
			warnColor.Fprintf(os.Stderr, "! Skipping cover art: %v\n", err)
			cover = nil
		}
	}

	tagger := audio.NewTagger(opts.rename)
	if err := tagger.ApplyRelease(opts.dir, release, cover); err != nil {
		fatalf("applying to %s: %v", opts.dir, err)
	}
	if !opts.quiet {
		successColor.Printf("✓ Tagged %d file(s) in %s\n", len(release.Tracks), opts.dir)
	}

	if opts.playlist {
		if err := audio.WritePlaylist(ctx, opts.playlistFormat, opts.dir, release); err != nil {
			fatalf("writing playlist: %v", err)
		}
		if !opts.quiet {
			successColor.Printf("✓ Wrote %s%s\n", release.PlaylistName(), opts.playlistFormat.Extension())
		}
	}
}

// printJSON prints one record as an object and several as an array.
func printJSON(releases []*model.ReleaseInfo) {
	var payload any = releases
	if len(releases) == 1 {
		payload = releases[0]
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		fatalf("encoding JSON: %v", err)
	}
	fmt.Println(string(data))
}

// printRelease prints the human-readable report for one release: the
// release header and a raw/clean line pair per track.
func printRelease(release *model.ReleaseInfo) {
	fmt.Println()
	headerColor.Printf("%s - %s\n", release.AlbumArtist, release.Album)
	dimColor.Println(releaseFacts(release))
	fmt.Println()

	for i := range release.Tracks {
		track := &release.Tracks[i]
		number := track.Index
		if number == 0 {
			number = i + 1
		}

		dimColor.Printf("  %02d. %s\n", number, track.OriginalName)

		fmt.Print("      → ")
		successColor.Print(track.Display())
		for _, badge := range trackBadges(track) {
			fmt.Print(" ")
			badgeColor.Print(" " + badge + " ")
		}
		fmt.Println()
	}
}

// releaseFacts joins the release-level facts that are present.
func releaseFacts(release *model.ReleaseInfo) string {
	facts := make([]string, 0, 4)
	if release.Label != "" {
		facts = append(facts, release.Label)
	}
	if release.Catalognum != "" {
		facts = append(facts, release.Catalognum)
	}
	if release.Date != "" {
		facts = append(facts, release.Date)
	}
	facts = append(facts, fmt.Sprintf("%d track(s)", len(release.Tracks)))

	return strings.Join(facts, " · ")
}

// trackBadges lists the short annotations shown after a clean line.
func trackBadges(track *model.TrackInfo) []string {
	var badges []string
	if track.TrackAlt != "" {
		badges = append(badges, track.TrackAlt)
	}
	if track.DigiOnly {
		badges = append(badges, "DIGI")
	}
	if hasFeaturing(track) {
		badges = append(badges, "FEAT")
	}
	return badges
}

// hasFeaturing reports a visible featuring credit in the normalized
// artist or title.
func hasFeaturing(track *model.TrackInfo) bool {
	s := strings.ToLower(track.Artist + " " + track.Title)
	return strings.Contains(s, "feat") || strings.Contains(s, "ft.") || strings.Contains(s, "w/")
}

func fatalf(format string, args ...any) {
	errorColor.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
