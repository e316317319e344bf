// Command gallery serves the widget gallery as a local developer harness.
// It is a visual tool, not a service API: every route renders the shell.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	yoastseo "github.com/almanaclabs/yoastseo"
	urlkit "github.com/goliatone/go-urlkit"
)

const defaultAddr = ":8091"

func main() {
	cfg := yoastseo.DefaultConfig()
	cfg.Features.Gallery = true
	cfg.Features.Logger = true
	cfg.Logging.Provider = "console"
	cfg.Logging.Level = "debug"
	cfg.Gallery.Theme = "base"
	cfg.Gallery.InitialWidget = "search-results"

	cfg.Navigation.RouteConfig = &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "gallery",
				BaseURL: "",
				Paths: map[string]string{
					"widget": "/widgets/:id",
				},
			},
		},
	}
	cfg.Navigation.URLKit = yoastseo.URLKitResolverConfig{
		DefaultGroup: "gallery",
		WidgetRoute:  "widget",
		WidgetParam:  "id",
	}

	module, err := yoastseo.New(cfg)
	if err != nil {
		log.Fatalf("initialise module: %v", err)
	}
	shell := module.Gallery()
	if shell == nil {
		log.Fatal("gallery feature is disabled")
	}

	addr := defaultAddr
	if fromEnv := os.Getenv("GALLERY_ADDR"); fromEnv != "" {
		addr = fromEnv
	}

	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		renderShell(w, shell)
	}).Methods(http.MethodGet)
	router.HandleFunc("/widgets/{id}", func(w http.ResponseWriter, r *http.Request) {
		shell.Navigate(mux.Vars(r)["id"])
		renderShell(w, shell)
	}).Methods(http.MethodGet)
	router.HandleFunc("/toggle-direction", func(w http.ResponseWriter, r *http.Request) {
		shell.ToggleDirection()
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}).Methods(http.MethodPost)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("gallery listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve gallery: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func renderShell(w http.ResponseWriter, shell *yoastseo.GalleryShell) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := shell.Render(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
