package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tonybolanyo/chordme-sub004/internal/chords"
	"github.com/tonybolanyo/chordme-sub004/internal/logger"
	"github.com/tonybolanyo/chordme-sub004/internal/metrics"
)

// ChordHandler exposes the chord notation engine over HTTP. A parse failure
// is a normal 200 response with is_valid=false; only malformed request
// bodies produce HTTP errors.
type ChordHandler struct {
	engine        *chords.Engine
	sentryMetrics *metrics.SentryMetrics
}

func NewChordHandler(engine *chords.Engine) *ChordHandler {
	return &ChordHandler{
		engine:        engine,
		sentryMetrics: metrics.NewSentryMetrics(),
	}
}

type ParseChordRequest struct {
	Chord string `json:"chord" binding:"required"`
}

// ParseChord parses a single chord symbol into its components.
func (h *ChordHandler) ParseChord(c *gin.Context) {
	var req ParseChordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	result := h.engine.Parse(req.Chord)

	invalid := 0
	if !result.IsValid {
		invalid = 1
		logger.Debug("Chord failed to parse", logger.Fields{
			"request_id": c.GetString("request_id"),
			"chord":      req.Chord,
		})
	}
	h.sentryMetrics.RecordChordParse(c.Request.Context(), 1, invalid, time.Since(start))

	c.JSON(http.StatusOK, result)
}

type ValidateChordsRequest struct {
	Chords []string `json:"chords" binding:"required"`
}

type ValidateChordsResponse struct {
	Results      []chords.ParseResult `json:"results"`
	ValidCount   int                  `json:"valid_count"`
	InvalidCount int                  `json:"invalid_count"`
}

// ValidateChords parses a batch of chord symbols, order-preserving.
func (h *ChordHandler) ValidateChords(c *gin.Context) {
	var req ValidateChordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	results := h.engine.ParseChords(req.Chords)

	response := ValidateChordsResponse{Results: results}
	for _, result := range results {
		if result.IsValid {
			response.ValidCount++
		} else {
			response.InvalidCount++
		}
	}
	h.sentryMetrics.RecordChordParse(c.Request.Context(), len(results), response.InvalidCount, time.Since(start))

	c.JSON(http.StatusOK, response)
}

type EnharmonicsResponse struct {
	Root        string   `json:"root"`
	Accidental  string   `json:"accidental"`
	Equivalents []string `json:"equivalents"`
}

// Enharmonics returns the alternate spellings of a root+accidental pair.
// The accidental arrives as a query parameter because "#" cannot live in a
// path segment unescaped.
func (h *ChordHandler) Enharmonics(c *gin.Context) {
	root := c.Query("root")
	accidental := c.Query("accidental")

	if len(root) != 1 || root[0] < 'A' || root[0] > 'G' {
		c.JSON(http.StatusBadRequest, gin.H{"error": "root must be a single letter A-G"})
		return
	}
	if accidental != "" && accidental != "#" && accidental != "b" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accidental must be \"#\" or \"b\""})
		return
	}

	c.JSON(http.StatusOK, EnharmonicsResponse{
		Root:        root,
		Accidental:  accidental,
		Equivalents: h.engine.EnharmonicEquivalents(root, accidental),
	})
}

type ValidateContentRequest struct {
	Content string `json:"content" binding:"required"`
}

// ValidateContent scans a ChordPro document and returns aggregate chord
// validity statistics. One bad chord never fails the request.
func (h *ChordHandler) ValidateContent(c *gin.Context) {
	var req ValidateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	analysis := h.engine.ValidateChordProContent(req.Content)
	h.sentryMetrics.RecordContentScan(c.Request.Context(), len(req.Content), analysis.TotalChords, time.Since(start))

	if analysis.InvalidCount > 0 {
		logger.Warn("Document contains invalid chords", logger.Fields{
			"request_id":     c.GetString("request_id"),
			"invalid_count":  analysis.InvalidCount,
			"distinct_total": analysis.TotalChords,
		})
	}

	c.JSON(http.StatusOK, analysis)
}
