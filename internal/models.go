package internal

import "time"

// Storage keys. Each key has exactly one owning widget; nothing else reads
// or writes it.
const (
	KeyNotifications = "notifications" // session scope
	KeyUserProfile   = "userProfile"
	KeyLastVisit     = "lastVisit"
	KeyUserStreak    = "userStreak"
	KeyTheme         = "dashboardTheme"
	KeyWallpaper     = "dashboardWallpaper"
	KeyWeatherPlace  = "weatherLocation"
	KeyWeatherCache  = "weatherCache"
	KeyAnalytics     = "analyticsData"
	KeyCalendar      = "calendarEvents"
	KeyBookmarks     = "bookmarkedQuotes"
	KeyMusicSource   = "musicSource"
	KeyQuickNotes    = "quickNotes"
	KeyUploadedFiles = "uploadedFiles"
	KeyEpisodeNum    = "onePieceEpisodeNum"
	KeyAnimeBackup   = "myAnimeListData"
)

// NotificationKind classifies a notification for display.
type NotificationKind string

const (
	KindSuccess NotificationKind = "success"
	KindError   NotificationKind = "error"
	KindWarning NotificationKind = "warning"
	KindInfo    NotificationKind = "info"
)

// Notification is one transient user-facing event in the session log.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"createdAt"`
	Sticky    bool             `json:"sticky,omitempty"`
	Read      bool             `json:"read"`
}

// Profile is the user's durable identity state.
type Profile struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// CalendarEvent is one scheduled entry. Date is YYYY-MM-DD; Time is an
// optional HH:MM.
type CalendarEvent struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	Category string `json:"category,omitempty"`
}

// AnalyticsData holds one week of activity counts per category, Monday
// first.
type AnalyticsData struct {
	Anime    [7]int `json:"anime"`
	Manga    [7]int `json:"manga"`
	Projects [7]int `json:"projects"`
}

// Quote is a single quotation, bookmarkable.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// FileMeta records metadata for an uploaded file; content is never stored.
type FileMeta struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	Type         string    `json:"type"`
	LastModified time.Time `json:"lastModified"`
	UploadDate   time.Time `json:"uploadDate"`
}

// AnimeEntry is one item of an anime list backup, the subset of fields the
// progress widget needs.
type AnimeEntry struct {
	Title      string `json:"title"`
	FinishDate string `json:"finishDate"` // YYYY-MM-DD, empty when unfinished
	Episodes   int    `json:"episodes"`
	Duration   int    `json:"duration"` // minutes per episode
}

// MediaItem is one entry of an anime catalog feed.
type MediaItem struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	CoverURL   string `json:"coverUrl,omitempty"`
	Score      int    `json:"score,omitempty"`
	Season     string `json:"season,omitempty"`
	SeasonYear int    `json:"seasonYear,omitempty"`
}

// ChannelStats is a video channel's public statistics.
type ChannelStats struct {
	Title       string    `json:"title"`
	Subscribers int64     `json:"subscribers"`
	Views       int64     `json:"views"`
	Videos      int64     `json:"videos"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// CodeStats is a code-hosting account's public statistics.
type CodeStats struct {
	Repos     int `json:"repos"`
	Followers int `json:"followers"`
	Stars     int `json:"stars"`
}

// WeatherReport is the provider-independent weather shape widgets render.
type WeatherReport struct {
	Location    string  `json:"location"`
	Temp        float64 `json:"temp"`
	TempMin     float64 `json:"tempMin"`
	TempMax     float64 `json:"tempMax"`
	Description string  `json:"description"`
	Condition   string  `json:"condition"` // Clear, Clouds, Rain, ...
}
