package handlers

import (
	"bytes"
	"io"
	"net/http"

	"tripsearch/internal/http/middleware"
	"tripsearch/internal/services"
	"tripsearch/internal/utils"
	"tripsearch/internal/view"

	"github.com/gin-gonic/gin"
)

// GET /?keywords=
//
// An upstream failure still renders the page, with an empty list; the
// controller has already logged it.
func (h *TripHandlers) SearchPage(c *gin.Context) {
	ctrl := h.controller(c)
	ctx := c.Request.Context()

	keywords := c.Query("keywords")
	if keywords == "" {
		_ = ctrl.Mount(ctx)
	} else {
		_ = ctrl.HandleInput(ctx, keywords)
	}

	h.renderHTML(c, http.StatusOK, ctrl.State(), view.RenderPage)
}

// GET /partials/trips?keywords=
//
// Returns only the result list. Failures answer 502 so the page script keeps
// the list it already shows.
func (h *TripHandlers) SearchResultsPartial(c *gin.Context) {
	ctrl := h.controller(c)
	if err := ctrl.HandleInput(c.Request.Context(), c.Query("keywords")); err != nil {
		RespondDomainError(c, err)
		return
	}
	h.renderHTML(c, http.StatusOK, ctrl.State(), view.RenderResults)
}

func (h *TripHandlers) renderHTML(c *gin.Context, status int, st services.SearchState, render func(io.Writer, view.PageData) error) {
	var buf bytes.Buffer
	if err := render(&buf, view.NewPageData(st, h.Env.TooltipDelay)); err != nil {
		utils.LogError(middleware.GetRequestID(c), "page", "render", err)
		respondError(c, http.StatusInternalServerError, "render_error", "template error", nil)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
