package internal

import (
	"fmt"
	"math"
	"mime"
	"os"
	"path/filepath"
	"time"
)

// fileStorageBudget is the total the usage meter measures against.
const fileStorageBudget = 100 * 1024 * 1024

// FilesWidget tracks metadata for files the user has registered with the
// dashboard. Only metadata is stored; content stays where it is.
type FilesWidget struct {
	store    *Store
	notifier Notifier
	now      func() time.Time

	status Status
	files  []FileMeta
}

// NewFilesWidget creates the widget.
func NewFilesWidget(store *Store, notifier Notifier) *FilesWidget {
	return &FilesWidget{
		store:    store,
		notifier: notifier,
		now:      time.Now,
		status:   StatusUninitialized,
	}
}

// Load reads the stored metadata list.
func (w *FilesWidget) Load() {
	w.status = StatusLoading
	w.files = nil
	w.store.Get(ScopeDurable, KeyUploadedFiles, &w.files)
	w.status = StatusReady
}

// Files returns the tracked metadata.
func (w *FilesWidget) Files() []FileMeta {
	return w.files
}

// Add stats the file at path and records its metadata.
func (w *FilesWidget) Add(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &ValidationError{Field: "file", Reason: "cannot read " + path}
	}
	if info.IsDir() {
		return &ValidationError{Field: "file", Reason: path + " is a directory"}
	}

	meta := FileMeta{
		Name:         filepath.Base(path),
		Size:         info.Size(),
		Type:         mime.TypeByExtension(filepath.Ext(path)),
		LastModified: info.ModTime(),
		UploadDate:   w.now(),
	}

	w.files = append(w.files, meta)
	if err := w.store.Set(ScopeDurable, KeyUploadedFiles, w.files); err != nil {
		w.notifier.Notify(KindError, "Storage Full", "File list kept for this session only.", false)
		return nil
	}

	w.notifier.Notify(KindSuccess, "File Uploaded", `"`+meta.Name+`" has been uploaded.`, false)
	return nil
}

// Remove drops one file's metadata by name; absent names are a no-op.
func (w *FilesWidget) Remove(name string) {
	kept := w.files[:0]
	removed := false
	for _, f := range w.files {
		if f.Name == name {
			removed = true
			continue
		}
		kept = append(kept, f)
	}
	if !removed {
		return
	}

	w.files = kept
	if err := w.store.Set(ScopeDurable, KeyUploadedFiles, w.files); err != nil {
		w.notifier.Notify(KindError, "Storage Full", "File list kept for this session only.", false)
		return
	}
	w.notifier.Notify(KindInfo, "File Deleted", `"`+name+`" has been removed.`, false)
}

// Status returns the widget's load state.
func (w *FilesWidget) Status() Status {
	return w.status
}

// FilesView is the rendered projection of the files widget.
type FilesView struct {
	Files     []FileMeta
	UsedBytes int64
	Used      string // "1.25 MB / 100 MB"
	UsedPct   float64
}

// ViewModel projects the file list and the usage meter.
func (w *FilesWidget) ViewModel() FilesView {
	var total int64
	for _, f := range w.files {
		total += f.Size
	}

	pct := float64(total) / float64(fileStorageBudget) * 100
	if pct > 100 {
		pct = 100
	}

	return FilesView{
		Files:     w.files,
		UsedBytes: total,
		Used:      fmt.Sprintf("%.2f MB / 100 MB", float64(total)/(1024*1024)),
		UsedPct:   pct,
	}
}

// FormatFileSize renders a byte count with binary units.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(units) {
		i = len(units) - 1
	}
	v := float64(bytes) / math.Pow(1024, float64(i))
	s := fmt.Sprintf("%.2f", v)
	// Trim trailing zeros the way the dashboard always displayed sizes.
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s + " " + units[i]
}
