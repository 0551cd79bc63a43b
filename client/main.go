//go:build js

package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"syscall/js"
	"time"

	"github.com/hexops/vecty"

	"voyagex-front/app"
	"voyagex-front/config"
	"voyagex-front/geo"
	"voyagex-front/logger"
	"voyagex-front/store"
	"voyagex-front/weather"
)

const geolocationTimeoutMs = 10000

// loadConfig overlays the YAML in <script id="voyagex-config"> on the
// built-in defaults, if the page carries one.
func loadConfig() (*config.Config, error) {
	el := js.Global().Get("document").Call("getElementById", "voyagex-config")
	if el.IsNull() || el.IsUndefined() {
		return config.Default(), nil
	}
	return config.Parse([]byte(el.Get("textContent").String()))
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		js.Global().Get("console").Call("error", err.Error())
		cfg = config.Default()
	}
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		js.Global().Get("console").Call("error", fmt.Sprintf("logger: %v", err))
		log = logger.Nop()
	}
	defer log.Sync()

	var backend store.Backend
	if ls, err := store.NewLocalStorage(); err != nil {
		log.Warn("falling back to in-memory storage", "error", err)
		backend = store.NewMemory()
	} else {
		backend = ls
	}

	ctx := context.Background()
	shell := NewShell(ctx, log)
	a, err := app.New(app.Options{
		Config:  cfg,
		Backend: backend,
		Views:   shell,
		Locator: browserLocator{timeoutMs: geolocationTimeoutMs},
		Weather: weather.New(&http.Client{Timeout: cfg.Weather.Timeout}, cfg.Weather.BaseURL, log),
		Places:  geo.NewPlacesClient(&http.Client{Timeout: cfg.Places.Timeout}, cfg.Places.BaseURL, cfg.Places.Limit, log),
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger:  log,
	})
	if err != nil {
		log.Error("app init failed", "error", err)
		return
	}
	shell.Attach(a)

	vecty.SetTitle(cfg.AppName)
	vecty.RenderBody(shell)
	go func() {
		if err := a.Initialize(ctx); err != nil {
			log.Error("initialize", "error", err)
		}
	}()

	select {}
}
