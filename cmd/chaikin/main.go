package main

import (
	"embed"
	"flag"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/example/chaikin-canvas/internal/canvas"
	"github.com/example/chaikin-canvas/internal/chaikin"
	"github.com/example/chaikin-canvas/internal/config"
)

//go:embed web
var webAssets embed.FS

func main() {
	// ---- Flags (remain usable; config.yaml can override most) ----
	var (
		addr       = flag.String("addr", ":8080", "HTTP listen address")
		fps        = flag.Int("fps", 60, "target frames per second")
		speed      = flag.Float64("speed", 1.0, "animation speed in subdivision levels per second")
		ease       = flag.String("ease", "linear", "easing: linear | smooth | cubic")
		width      = flag.Int("width", 800, "logical canvas width (px)")
		height     = flag.Int("height", 600, "logical canvas height (px)")
		dragRadius = flag.Float64("drag-radius", 20, "grab distance for dragging a control point (px)")
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Load config.yaml (optional) ----
	var cfg *config.Config
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
	} else {
		cfg = c
	}

	// ---- Effective params (config overrides flags where available) ----
	eAddr := *addr
	eFPS, eSpeed, eEase := *fps, *speed, *ease
	eW, eH := *width, *height
	eDrag := *dragRadius

	if cfg != nil {
		if cfg.Addr != "" {
			eAddr = cfg.Addr
		}
		if cfg.FPS > 0 {
			eFPS = cfg.FPS
		}
		if cfg.Anim.Speed > 0 {
			eSpeed = cfg.Anim.Speed
		}
		if cfg.Anim.Ease != "" {
			eEase = cfg.Anim.Ease
		}
		if cfg.Canvas.Width > 0 {
			eW = cfg.Canvas.Width
		}
		if cfg.Canvas.Height > 0 {
			eH = cfg.Canvas.Height
		}
		if cfg.DragRadius > 0 {
			eDrag = cfg.DragRadius
		}
	}

	effective := &config.Config{
		Addr:       eAddr,
		FPS:        eFPS,
		DragRadius: eDrag,
		Canvas:     config.Canvas{Width: eW, Height: eH},
		Anim:       config.Anim{Speed: eSpeed, Ease: eEase},
	}

	// ---- State ----
	state := canvas.NewState(effective, chaikin.SystemClock())
	state.ConfigPath = *configPath

	// ---- HTTP routes ----
	webContent, err := fs.Sub(webAssets, "web")
	if err != nil {
		log.Fatal().Err(err).Msg("embedded web assets missing")
	}
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.FS(webContent)))
	mux.HandleFunc("/ws", state.HandleFramesWS)
	mux.HandleFunc("/diag", state.HandleDiagWS)
	mux.HandleFunc("/control", state.HandleControlWS)
	mux.HandleFunc("/health", state.HandleHealth)

	srv := &http.Server{
		Addr:        eAddr,
		Handler:     withCORS(mux),
		ReadTimeout: 5 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// ---- Run render loop & server ----
	go state.RunRenderLoop()
	go func() {
		log.Info().Str("addr", eAddr).Int("fps", eFPS).Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server crashed")
		}
	}()

	// ---- Graceful shutdown ----
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	s := <-ch
	log.Info().Str("signal", s.String()).Msg("shutting down")

	_ = srv.Close()
	if state.Driver != nil {
		_ = state.Driver.Close()
	}
}

func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(200)
			return
		}
		h.ServeHTTP(w, r)
	})
}
