package internal

// Themes the dashboard knows how to render.
var Themes = []string{"dark", "light", "sakura", "ocean"}

// Wallpapers is the fixed wallpaper rotation; entries are display names the
// CLI shows rather than image bytes.
var Wallpapers = []string{
	"City Lights",
	"Mountain Dusk",
	"Violet Gradient",
}

// ThemeWidget owns the theme name and wallpaper index.
type ThemeWidget struct {
	store    *Store
	notifier Notifier

	status    Status
	theme     string
	wallpaper int
}

// NewThemeWidget creates the widget.
func NewThemeWidget(store *Store, notifier Notifier) *ThemeWidget {
	return &ThemeWidget{store: store, notifier: notifier, status: StatusUninitialized}
}

// Load reads stored preferences, defaulting to the dark theme and the
// first wallpaper. An out-of-range stored index falls back to zero.
func (w *ThemeWidget) Load() {
	w.status = StatusLoading

	w.theme = "dark"
	w.store.Get(ScopeDurable, KeyTheme, &w.theme)
	if !validTheme(w.theme) {
		w.theme = "dark"
	}

	w.wallpaper = 0
	w.store.Get(ScopeDurable, KeyWallpaper, &w.wallpaper)
	if w.wallpaper < 0 || w.wallpaper >= len(Wallpapers) {
		w.wallpaper = 0
	}

	w.status = StatusReady
}

func validTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

// SetTheme validates and persists a theme choice.
func (w *ThemeWidget) SetTheme(name string) error {
	if !validTheme(name) {
		return &ValidationError{Field: "theme", Reason: "unknown theme " + name}
	}

	w.theme = name
	if err := w.store.Set(ScopeDurable, KeyTheme, name); err != nil {
		w.notifier.Notify(KindError, "Storage Full", "Theme kept for this session only.", false)
		return nil
	}

	w.notifier.Notify(KindSuccess, "Theme Changed", "Switched to "+name+" theme.", false)
	return nil
}

// SetWallpaper persists a wallpaper index.
func (w *ThemeWidget) SetWallpaper(index int) error {
	if index < 0 || index >= len(Wallpapers) {
		return &ValidationError{Field: "wallpaper", Reason: "index out of range"}
	}

	w.wallpaper = index
	if err := w.store.Set(ScopeDurable, KeyWallpaper, index); err != nil {
		w.notifier.Notify(KindError, "Storage Full", "Wallpaper kept for this session only.", false)
		return nil
	}

	w.notifier.Notify(KindInfo, "Wallpaper Changed", "Background wallpaper updated.", false)
	return nil
}

// NextWallpaper cycles to the next wallpaper, wrapping around.
func (w *ThemeWidget) NextWallpaper() error {
	return w.SetWallpaper((w.wallpaper + 1) % len(Wallpapers))
}

// Status returns the widget's load state.
func (w *ThemeWidget) Status() Status {
	return w.status
}

// ThemeView is the rendered projection of the theme widget.
type ThemeView struct {
	Theme          string
	WallpaperIndex int
	WallpaperName  string
}

// ViewModel projects current state.
func (w *ThemeWidget) ViewModel() ThemeView {
	idx := w.wallpaper
	if idx < 0 || idx >= len(Wallpapers) {
		idx = 0
	}
	return ThemeView{
		Theme:          w.theme,
		WallpaperIndex: idx,
		WallpaperName:  Wallpapers[idx],
	}
}
