package internal

import (
	"os"
)

// NotesWidget owns the quick-notes free text.
type NotesWidget struct {
	store    *Store
	notifier Notifier

	status Status
	text   string
}

// NewNotesWidget creates the widget.
func NewNotesWidget(store *Store, notifier Notifier) *NotesWidget {
	return &NotesWidget{store: store, notifier: notifier, status: StatusUninitialized}
}

// Load reads the stored notes; absent notes are empty text.
func (w *NotesWidget) Load() {
	w.status = StatusLoading
	w.text = ""
	w.store.Get(ScopeDurable, KeyQuickNotes, &w.text)
	w.status = StatusReady
}

// Text returns the current notes content.
func (w *NotesWidget) Text() string {
	return w.text
}

// Set replaces the notes content. Empty text is allowed; it is how notes
// are cleared.
func (w *NotesWidget) Set(text string) {
	w.text = text
	if err := w.store.Set(ScopeDurable, KeyQuickNotes, text); err != nil {
		w.notifier.Notify(KindError, "Storage Full", "Notes kept for this session only.", false)
	}
}

// Append adds a line to the notes.
func (w *NotesWidget) Append(line string) {
	if w.text == "" {
		w.Set(line)
		return
	}
	w.Set(w.text + "\n" + line)
}

// Export writes the notes to a file.
func (w *NotesWidget) Export(path string) error {
	if err := os.WriteFile(path, []byte(w.text), 0644); err != nil {
		return err
	}
	w.notifier.Notify(KindSuccess, "Notes Exported", "Your notes have been saved to "+path+".", false)
	return nil
}

// Import replaces the notes with a file's content.
func (w *NotesWidget) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	w.Set(string(data))
	w.notifier.Notify(KindSuccess, "Notes Imported", "Your notes have been imported successfully.", false)
	return nil
}

// Status returns the widget's load state.
func (w *NotesWidget) Status() Status {
	return w.status
}

// NotesView is the rendered projection of the notes widget.
type NotesView struct {
	Text  string
	Empty bool
}

// ViewModel projects the current notes.
func (w *NotesWidget) ViewModel() NotesView {
	return NotesView{Text: w.text, Empty: w.text == ""}
}
