package web

import (
	"net/http"

	"github.com/mishimalab/frametrap/internal/ops"
)

// Handlers contains HTTP route handlers for the inspection UI.
type Handlers struct {
	svc      *ops.Service
	renderer *Renderer
}

// HandleCharacters handles GET /characters and lists the roster.
func (h *Handlers) HandleCharacters(w http.ResponseWriter, r *http.Request) {
	result := h.svc.ListCharacters()

	h.renderer.renderPage(w, "characters", CharactersPageData{
		PageData: PageData{
			Title:   "Characters",
			Version: h.renderer.version,
		},
		Characters: result.Characters,
		Count:      result.Count,
	})
}

// HandleCharacter handles GET /characters/{name} and shows the
// character's scored movelist plus, when available, the wiki overview.
func (h *Handlers) HandleCharacter(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	result, err := h.svc.GetMovelist(r.Context(), name)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	data := CharacterPageData{
		PageData: PageData{
			Title:   displayName(result.Character),
			Version: h.renderer.version,
		},
		Character: result.Character,
		Moves:     result.Moves,
		Count:     result.Count,
	}

	// The overview is decorative; a fetch failure never blocks the page.
	if overview, err := h.svc.GetOverview(r.Context(), result.Character); err == nil && overview.Overview != "" {
		data.OverviewHTML = renderMarkdown(overview.Overview)
		data.HasOverview = true
	}

	h.renderer.renderPage(w, "character", data)
}
