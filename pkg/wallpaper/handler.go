package wallpaper

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/yeargrid/yeargrid/internal/event_bus"
	"github.com/yeargrid/yeargrid/internal/utils"
	"github.com/yeargrid/yeargrid/pkg/birthday"
	"github.com/yeargrid/yeargrid/pkg/calendar"
	"github.com/yeargrid/yeargrid/pkg/grid"
)

const (
	defaultWidth  = 1284
	defaultHeight = 2778
	minWidth      = 600
	maxWidth      = 3000
	minHeight     = 900
	maxHeight     = 4000

	// A day's render only changes when the birthday collection does, so
	// cached documents stay valid until the bus says otherwise or the
	// resolved date rolls over (which changes the cache key).
	maxCachedRenders = 64
)

// Handler serves the rendered year grid.
type Handler struct {
	birthdays *birthday.Service
	grid      *grid.Service
	clock     utils.Clock

	mu    sync.RWMutex
	cache map[string]string
}

func NewHandler(birthdays *birthday.Service, gridService *grid.Service, clock utils.Clock, bus *event_bus.EventBus) *Handler {
	h := &Handler{
		birthdays: birthdays,
		grid:      gridService,
		clock:     clock,
		cache:     make(map[string]string),
	}
	if bus != nil {
		bus.Subscribe(event_bus.BirthdaysUpdated, func(event_bus.Event) error {
			h.purgeCache()
			return nil
		})
	}
	return h
}

// GetWallpaper renders the year grid for the requested dimensions and date.
// Malformed parameters never fail the request: dimensions are clamped and a
// bad date falls back to the current CET date.
func (h *Handler) GetWallpaper(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	width := calendar.Clamp(intParam(query.Get("width"), defaultWidth), minWidth, maxWidth)
	height := calendar.Clamp(intParam(query.Get("height"), defaultHeight), minHeight, maxHeight)
	date := calendar.ParseDateOrNow(query.Get("date"), h.clock)

	key := fmt.Sprintf("%dx%d@%s", width, height, date.Format("2006-01-02"))
	if svg, ok := h.cached(key); ok {
		writeSVG(w, svg)
		return
	}

	birthdays := h.birthdays.ListOrEmpty(r.Context())
	result := h.grid.Compute(date, birthdays)
	svg := Render(Options{Width: width, Height: height, Result: result})
	h.store(key, svg)

	log.Debugf("Rendered wallpaper %s with %d birthdays", key, len(birthdays))
	writeSVG(w, svg)
}

func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func writeSVG(w http.ResponseWriter, svg string) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, s-maxage=3600, stale-while-revalidate=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(svg)); err != nil {
		log.Errorf("Failed to write wallpaper response: %v", err)
	}
}

func (h *Handler) cached(key string) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	svg, ok := h.cache[key]
	return svg, ok
}

func (h *Handler) store(key, svg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.cache) >= maxCachedRenders {
		h.cache = make(map[string]string)
	}
	h.cache[key] = svg
}

func (h *Handler) purgeCache() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cache = make(map[string]string)
}
