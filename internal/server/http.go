package server

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"RacketHearts/internal/storage"
	"RacketHearts/internal/story"
)

func (a *App) router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ws", func(c *gin.Context) {
		serveWS(a, c.Writer, c.Request)
	})

	api := r.Group("/api")
	api.GET("/characters", a.handleCharacters)
	api.GET("/endings", a.handleEndings)
	api.GET("/sessions/:id/slots", a.handleListSlots)
	api.DELETE("/sessions/:id/slots/:slot", a.handleDeleteSlot)

	return r
}

func (a *App) handleCharacters(c *gin.Context) {
	out := make([]story.Character, 0, len(a.Library.Characters))
	for id, ch := range a.Library.Characters {
		if id == story.PlayerID {
			continue
		}
		out = append(out, ch)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}

type endingEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Good     bool   `json:"good,omitempty"`
	Unlocked bool   `json:"unlocked"`
}

// handleEndings is the gallery: every authored ending, with name and
// tone revealed only once unlocked.
func (a *App) handleEndings(c *gin.Context) {
	out := make([]endingEntry, 0, len(a.Library.Endings))
	for id, e := range a.Library.Endings {
		entry := endingEntry{ID: id, Unlocked: a.Hub.Meta().EndingUnlocked(id)}
		if entry.Unlocked {
			entry.Name = e.Name
			entry.Good = e.Good
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (a *App) handleListSlots(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storageTimeout)
	defer cancel()
	slots, err := a.Store.ListSlots(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if slots == nil {
		slots = []storage.SlotInfo{}
	}
	c.JSON(http.StatusOK, slots)
}

func (a *App) handleDeleteSlot(c *gin.Context) {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot must be a number"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), storageTimeout)
	defer cancel()
	if err := a.Store.DeleteSlot(ctx, c.Param("id"), slot); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, storage.ErrSlotOutOfRange) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": slot})
}
