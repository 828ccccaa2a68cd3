package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/matt-g-everett/ledtween/stream"
)

// A StatusSource reports what is being streamed.
type StatusSource interface {
	Status() stream.Status
}

// Api serves the streamer status over HTTP.
type Api struct {
	source StatusSource
	mux    *http.ServeMux
}

// NewApi creates an Api for source. When staticDir is set its files are
// served from the root path.
func NewApi(source StatusSource, staticDir string) *Api {
	a := new(Api)
	a.source = source
	a.mux = http.NewServeMux()
	a.mux.HandleFunc("/status", a.handleStatus)
	if staticDir != "" {
		a.mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}
	return a
}

// Handler returns the HTTP handler for the Api.
func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.source.Status()); err != nil {
		log.Printf("Failed to write status: %v", err)
	}
}

// shutdownTimeout bounds how long Serve waits for open requests once ctx is
// done.
var shutdownTimeout = 5 * time.Second

// Serve listens on addr until ctx is done.
func (a *Api) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return a.serve(ctx, ln)
}

func (a *Api) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: a.mux}
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Failed to shut down: %v", err)
		}
	}()

	log.Printf("Listening on %s...", ln.Addr())
	if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-stopped
	return nil
}
