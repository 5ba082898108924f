package internal

// MusicSources the switcher knows about.
var MusicSources = []string{"spotify", "local"}

// Track is one entry of the built-in sample playlist.
type Track struct {
	Title  string
	Artist string
}

var sampleTracks = []Track{
	{Title: "Sample Track 1", Artist: "Unknown Artist"},
	{Title: "Sample Track 2", Artist: "Unknown Artist"},
	{Title: "Sample Track 3", Artist: "Unknown Artist"},
}

// MusicWidget owns the source preference and the sample playlist cursor.
// Playback itself is out of scope; the widget tracks what would be playing.
type MusicWidget struct {
	store    *Store
	notifier Notifier

	status  Status
	source  string
	playing bool
	track   int
}

// NewMusicWidget creates the widget.
func NewMusicWidget(store *Store, notifier Notifier) *MusicWidget {
	return &MusicWidget{store: store, notifier: notifier, status: StatusUninitialized}
}

// Load reads the stored source preference, defaulting to spotify.
func (w *MusicWidget) Load() {
	w.status = StatusLoading

	w.source = "spotify"
	w.store.Get(ScopeDurable, KeyMusicSource, &w.source)
	if !validSource(w.source) {
		w.source = "spotify"
	}

	w.status = StatusReady
}

func validSource(name string) bool {
	for _, s := range MusicSources {
		if s == name {
			return true
		}
	}
	return false
}

// SetSource validates and persists the music source.
func (w *MusicWidget) SetSource(name string) error {
	if !validSource(name) {
		return &ValidationError{Field: "source", Reason: "unknown source " + name}
	}

	w.source = name
	if err := w.store.Set(ScopeDurable, KeyMusicSource, name); err != nil {
		w.notifier.Notify(KindError, "Storage Full", "Source kept for this session only.", false)
		return nil
	}

	w.notifier.Notify(KindSuccess, "Music Source Changed", "Now using "+name+".", false)
	return nil
}

// TogglePlay flips the playing flag.
func (w *MusicWidget) TogglePlay() {
	w.playing = !w.playing
}

// NextTrack advances the playlist cursor, wrapping.
func (w *MusicWidget) NextTrack() {
	w.track = (w.track + 1) % len(sampleTracks)
}

// PreviousTrack moves the cursor back, wrapping.
func (w *MusicWidget) PreviousTrack() {
	w.track = (w.track - 1 + len(sampleTracks)) % len(sampleTracks)
}

// Status returns the widget's load state.
func (w *MusicWidget) Status() Status {
	return w.status
}

// MusicView is the rendered projection of the music widget.
type MusicView struct {
	Source  string
	Playing bool
	Title   string
	Artist  string
}

// ViewModel projects the current source and track.
func (w *MusicWidget) ViewModel() MusicView {
	t := sampleTracks[w.track]
	return MusicView{
		Source:  w.source,
		Playing: w.playing,
		Title:   t.Title,
		Artist:  t.Artist,
	}
}
