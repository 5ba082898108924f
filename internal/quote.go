package internal

import (
	"context"
	"math/rand"
)

// sampleQuotes is the offline fallback rotation.
var sampleQuotes = []Quote{
	{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{Text: "Life is what happens to you while you're busy making other plans.", Author: "John Lennon"},
	{Text: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt"},
}

// QuoteWidget owns the current quote and the bookmark list.
type QuoteWidget struct {
	store    *Store
	notifier Notifier
	source   QuoteSource

	status  Status
	current Quote
}

// NewQuoteWidget creates the widget.
func NewQuoteWidget(store *Store, notifier Notifier, source QuoteSource) *QuoteWidget {
	return &QuoteWidget{store: store, notifier: notifier, source: source, status: StatusUninitialized}
}

// Load fetches a fresh quote. Quotes are not cached: refresh is always
// user-driven, so every load is one provider attempt. On failure a sample
// quote is shown and a warning recorded.
func (w *QuoteWidget) Load(ctx context.Context) {
	w.status = StatusLoading

	q, err := w.source.Random(ctx)
	if err != nil {
		Log.Warn().Err(err).Msg("quote fetch failed")
		w.current = sampleQuotes[rand.Intn(len(sampleQuotes))]
		w.notifier.Notify(KindWarning, "Offline Mode",
			"Using built-in quotes. Check your connection for fresh quotes.", false)
		w.status = StatusDegraded
		return
	}

	w.current = q
	w.status = StatusReady
}

// Current returns the quote being shown.
func (w *QuoteWidget) Current() Quote {
	return w.current
}

// Bookmark saves the current quote. Duplicates (same text and author) are
// suppressed with an info notification.
func (w *QuoteWidget) Bookmark() {
	if w.current.Text == "" {
		return
	}

	bookmarks := w.Bookmarks()
	for _, q := range bookmarks {
		if q.Text == w.current.Text && q.Author == w.current.Author {
			w.notifier.Notify(KindInfo, "Already Bookmarked",
				"This quote is already in your bookmarks.", false)
			return
		}
	}

	bookmarks = append(bookmarks, w.current)
	if err := w.store.Set(ScopeDurable, KeyBookmarks, bookmarks); err != nil {
		w.notifier.Notify(KindError, "Storage Full", "Bookmark kept for this session only.", false)
		return
	}

	w.notifier.Notify(KindSuccess, "Quote Bookmarked", "Quote added to your bookmarks.", false)
}

// Bookmarks returns all saved quotes.
func (w *QuoteWidget) Bookmarks() []Quote {
	var out []Quote
	w.store.Get(ScopeDurable, KeyBookmarks, &out)
	return out
}

// Status returns the widget's load state.
func (w *QuoteWidget) Status() Status {
	return w.status
}

// QuoteView is the rendered projection of the quote widget.
type QuoteView struct {
	Text     string
	Author   string
	Degraded bool
}

// ViewModel projects the current quote.
func (w *QuoteWidget) ViewModel() QuoteView {
	return QuoteView{
		Text:     w.current.Text,
		Author:   "- " + w.current.Author,
		Degraded: w.status == StatusDegraded,
	}
}
