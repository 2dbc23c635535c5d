package handlers

import (
	"net/http"

	intconfig "tripsearch/internal/config"
	"tripsearch/internal/domain/models"
	"tripsearch/internal/http/middleware"
	"tripsearch/internal/repositories"
	"tripsearch/internal/services"

	"github.com/gin-gonic/gin"
)

// TripHandlers serves the search page and the trip endpoints. Each request
// gets its own SearchController; nothing is shared between requests.
type TripHandlers struct {
	Env    intconfig.Env
	Client *http.Client
}

func NewTripHandlers(env intconfig.Env) *TripHandlers {
	return &TripHandlers{
		Env:    env,
		Client: &http.Client{Timeout: env.TripsTimeout},
	}
}

func (h *TripHandlers) repo(c *gin.Context) repositories.TripsRepository {
	return repositories.TripsRepository{
		BaseURL:   h.Env.TripsBaseURL,
		Client:    h.Client,
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *TripHandlers) controller(c *gin.Context) *services.SearchController {
	ctrl := services.NewSearchController(h.repo(c), nil, h.Env.TooltipDelay)
	ctrl.RequestID = middleware.GetRequestID(c)
	return ctrl
}

// GET /api/trips?keywords=
func (h *TripHandlers) SearchTrips(c *gin.Context) {
	ctrl := h.controller(c)
	if err := ctrl.HandleInput(c.Request.Context(), c.Query("keywords")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TripSearchResponse{Data: ctrl.State().Trips})
}

// GET /api/trips/export.pdf?keywords=
func (h *TripHandlers) ExportTripsPDF(c *gin.Context) {
	svc := services.ExportService{
		Repo:      h.repo(c),
		RequestID: middleware.GetRequestID(c),
		FontPath:  h.Env.PDFFontPath,
	}
	pdfBytes, filename, err := svc.ExportTrips(c.Request.Context(), c.Query("keywords"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
