package formatkit

import (
	"github.com/fsnotify/fsnotify"
)

// Detection is one event emitted by a Watcher: a file appeared or changed
// and was re-identified.
type Detection struct {
	Path   string
	Format Format
}

// Watcher re-detects files in watched directories as they are created or
// written. Events carry best-effort results; a file removed between the
// notification and the read is reported as Unknown.
type Watcher struct {
	detector *Detector
	watcher  *fsnotify.Watcher
	events   chan Detection
	errors   chan error
	done     chan struct{}
}

// NewWatcher starts a watcher using the default detector limits.
func NewWatcher() (*Watcher, error) {
	return NewDetector().Watch()
}

// Watch starts a watcher bound to this detector's limits.
func (d *Detector) Watch() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		detector: d,
		watcher:  fw,
		events:   make(chan Detection, 64),
		errors:   make(chan error, 4),
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Add starts watching a directory or file.
func (w *Watcher) Add(path string) error {
	return w.watcher.Add(path)
}

// Events delivers detections for created and modified files.
func (w *Watcher) Events() <-chan Detection {
	return w.events
}

// Errors delivers watch failures.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and closes both channels.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

// loop forwards filesystem notifications as detections. Sends never
// block: when a consumer falls behind, events are dropped rather than
// wedging Close.
func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.events)
	defer close(w.errors)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			format, err := w.detector.FromFile(event.Name)
			if err != nil {
				format = Unknown
			}
			select {
			case w.events <- Detection{Path: event.Name, Format: format}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}
