package tui

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/razor-flap/internal/games/flap"
	"github.com/vovakirdan/razor-flap/internal/storage"
)

// RunRecorder stores runs.
type RunRecorder interface {
	RecordRun(r storage.Run) error
}

// ResultWriter is a flap.ResultSink that records runs on its own goroutine,
// so a slow disk never stalls the frame loop.
type ResultWriter struct {
	store  RunRecorder
	logger *log.Logger
	queue  chan flap.DeathCertificate
	wg     sync.WaitGroup
	once   sync.Once

	mu     sync.Mutex
	closed bool
	onSave func(storage.Run)
}

var _ flap.ResultSink = (*ResultWriter)(nil)

const resultQueueSize = 32

// NewResultWriter starts a writer. onSave, if set, is called after every
// successful write from the writer goroutine.
func NewResultWriter(store RunRecorder, logger *log.Logger, onSave func(storage.Run)) *ResultWriter {
	w := &ResultWriter{
		store:  store,
		logger: logger,
		queue:  make(chan flap.DeathCertificate, resultQueueSize),
		onSave: onSave,
	}
	w.wg.Add(1)
	go w.run()
	return w
}

func (w *ResultWriter) run() {
	defer w.wg.Done()
	for cert := range w.queue {
		r := storage.RunFromCertificate(cert)
		if err := w.store.RecordRun(r); err != nil {
			w.logger.Warn("record run failed", "run", cert.ID, "err", err)
			continue
		}
		w.logger.Debug("run recorded", "run", cert.ID, "score", cert.Score)
		if w.onSave != nil {
			w.onSave(r)
		}
	}
}

// SubmitRun queues cert. It never blocks; when the queue is full or the
// writer is closed the run is dropped and logged.
func (w *ResultWriter) SubmitRun(cert flap.DeathCertificate) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		w.logger.Warn("run dropped, writer closed", "run", cert.ID)
		return
	}
	select {
	case w.queue <- cert:
	default:
		w.logger.Warn("run dropped, queue full", "run", cert.ID)
	}
}

// Close stops accepting runs and waits for queued ones to be written.
func (w *ResultWriter) Close() {
	w.once.Do(func() {
		w.mu.Lock()
		w.closed = true
		close(w.queue)
		w.mu.Unlock()
		w.wg.Wait()
	})
}
