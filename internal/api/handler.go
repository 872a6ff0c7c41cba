package api

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tradeflow/internal/domain/dto"
	"github.com/guttosm/tradeflow/internal/domain/models"
	"github.com/guttosm/tradeflow/internal/loader"
	"github.com/guttosm/tradeflow/internal/service"
)

// Handler provides HTTP handlers for the trade loading endpoints.
type Handler struct {
	svc service.LoadService
}

// NewHandler constructs a Handler backed by the given load service.
func NewHandler(svc service.LoadService) *Handler {
	return &Handler{svc: svc}
}

// ParseTrades handles POST /api/v1/trades/parse requests.
//
// The request body is multipart form data with one or more CSV files under
// the "files" field. Parsing is a dry run: nothing is persisted. Malformed
// rows and files are reported in the failures list, never as an HTTP error.
//
// ParseTrades godoc
// @Summary      Parse trade CSV files
// @Description  Parses uploaded CSV trade files without persisting, returning trades and per-row failures
// @Tags         trades
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file    true   "CSV trade files"
// @Param        kind   query     string  false  "Restrict output to one trade kind" example(Fra)
// @Success      200    {object}  dto.LoadResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse "Bad Request"
// @Router       /api/v1/trades/parse [post]
func (h *Handler) ParseTrades(c *gin.Context) {
	sources, kind, ok := h.parseRequest(c)
	if !ok {
		return
	}
	res := h.svc.Parse(sources, kind)
	c.JSON(http.StatusOK, dto.NewLoadResponse(res))
}

// LoadTrades handles POST /api/v1/trades/load requests.
//
// Same contract as ParseTrades, but the parsed trades and failures are
// persisted under a fresh batch id, which is echoed in the response.
//
// LoadTrades godoc
// @Summary      Load trade CSV files
// @Description  Parses uploaded CSV trade files and persists trades and failures as one batch
// @Tags         trades
// @Accept       multipart/form-data
// @Produce     json
// @Param        files  formData  file    true   "CSV trade files"
// @Param        kind   query     string  false  "Restrict output to one trade kind" example(Swap)
// @Success      200    {object}  dto.LoadResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse "Bad Request"
// @Failure      500    {object}  dto.ErrorResponse "Internal Error"
// @Router       /api/v1/trades/load [post]
func (h *Handler) LoadTrades(c *gin.Context) {
	sources, kind, ok := h.parseRequest(c)
	if !ok {
		return
	}
	res, batchID, err := h.svc.Load(c.Request.Context(), sources, kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to persist load", err))
		return
	}
	resp := dto.NewLoadResponse(res)
	resp.BatchID = batchID.String()
	c.JSON(http.StatusOK, resp)
}

// GetStats handles GET /api/v1/trades/stats requests.
//
// GetStats godoc
// @Summary      Persisted trade counts
// @Description  Returns persisted trade counts broken down by kind
// @Tags         trades
// @Produce      json
// @Success      200  {object}  models.LoadStats   "Success"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/trades/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch stats", err))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// parseRequest extracts the uploaded sources and optional kind filter.
// On validation failure it writes the 400 response and returns ok=false.
func (h *Handler) parseRequest(c *gin.Context) ([]loader.Source, *models.TradeKind, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid multipart form", err))
		return nil, nil, false
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("at least one file is required under 'files'", nil))
		return nil, nil, false
	}

	sources := make([]loader.Source, 0, len(files))
	for _, fh := range files {
		sources = append(sources, fileHeaderSource(fh))
	}

	var kind *models.TradeKind
	if s := strings.TrimSpace(c.Query("kind")); s != "" {
		k, err := models.ParseTradeKind(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid kind parameter", err))
			return nil, nil, false
		}
		kind = &k
	}
	return sources, kind, true
}

// fileHeaderSource adapts one uploaded file to a loader source.
// multipart file headers can be reopened, so sniffing and parsing both work.
func fileHeaderSource(fh *multipart.FileHeader) loader.Source {
	return loader.Source{
		Name: fh.Filename,
		Open: func() (io.ReadCloser, error) { return fh.Open() },
	}
}
