package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rezonia/invoice-playground/internal/craft"
	"github.com/rezonia/invoice-playground/internal/invoice"
	"github.com/rezonia/invoice-playground/internal/model"
	"github.com/rezonia/invoice-playground/internal/preset"
)

// generationBudget bounds each request's engine work, mirroring the
// playground's client-side wait budget.
const generationBudget = 30 * time.Second

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
	// UsePlugins registers the built-in plugins on the engine
	UsePlugins bool
	// Defaults are applied when a request carries no render options
	Defaults model.RenderOptions
}

// Server exposes the playground over HTTP
type Server struct {
	config *Config
	router *gin.Engine
	engine *craft.Engine
}

// NewServer creates a new playground API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	engineOpts := []craft.Option{craft.WithDefaults(config.Defaults)}
	if config.UsePlugins {
		engineOpts = append(engineOpts, craft.WithPlugins(craft.BuiltInPlugins()...))
	}

	s := &Server{
		config: config,
		router: router,
		engine: craft.NewEngine(engineOpts...),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/generate", s.handleGenerate)
		v1.POST("/validate", s.handleValidate)
		v1.POST("/preview", s.handlePreview)
		v1.POST("/export/:format", s.handleExport)
		v1.POST("/batch", s.handleBatch)

		v1.GET("/presets", s.handlePresets)
		v1.POST("/presets/:key/generate", s.handlePresetGenerate)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// readDocument decodes and structurally checks the request body. It
// answers the request itself when the body is unusable.
func (s *Server) readDocument(c *gin.Context) (*model.Document, []byte, bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return nil, nil, false
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty request body"})
		return nil, nil, false
	}

	doc, err := model.ParseDocument(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	return doc, body, true
}

func (s *Server) handleGenerate(c *gin.Context) {
	doc, _, ok := s.readDocument(c)
	if !ok {
		return
	}

	if err := invoice.Validate(&doc.Invoice); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generationBudget)
	defer cancel()

	artifact, err := s.engine.Generate(ctx, &doc.Invoice, &doc.Options)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	serveArtifact(c, artifact.Data, artifact.MIMEType, artifact.Filename)
}

func (s *Server) handleValidate(c *gin.Context) {
	doc, _, ok := s.readDocument(c)
	if !ok {
		return
	}

	resp := ValidateResponse{Report: s.engine.ValidateInvoice(&doc.Invoice)}
	if c.Query("strict") == "true" {
		resp.Report = s.engine.ValidateInvoiceStrict(&doc.Invoice)
	}
	if err := invoice.Validate(&doc.Invoice); err != nil {
		msg := err.Error()
		resp.FirstError = &msg
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handlePreview(c *gin.Context) {
	doc, body, ok := s.readDocument(c)
	if !ok {
		return
	}

	if err := invoice.Validate(&doc.Invoice); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	// Preview options ride alongside the document; absent fields fall
	// back to the render options.
	var req PreviewRequest
	_ = json.Unmarshal(body, &req)

	opts := req.Preview
	if opts.BrandColor == "" {
		opts.BrandColor = doc.Options.BrandColor
	}
	if opts.Labels == nil {
		opts.Labels = doc.Options.Labels
	}
	opts.IncludeStyles = true

	html, err := s.engine.PreviewHTML(&doc.Invoice, opts)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) handleExport(c *gin.Context) {
	format, err := craft.ParseExportFormat(c.Param("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, _, ok := s.readDocument(c)
	if !ok {
		return
	}

	if err := invoice.Validate(&doc.Invoice); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generationBudget)
	defer cancel()

	result, err := s.engine.Export(ctx, &doc.Invoice, craft.ExportOptions{
		Format:        format,
		BrandColor:    doc.Options.BrandColor,
		LayoutStyle:   doc.Options.LayoutStyle,
		Labels:        doc.Options.Labels,
		IncludeStyles: true,
	})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	serveArtifact(c, result.Data, result.MIMEType, result.Filename)
}

func (s *Server) handleBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid batch request: %v", err)})
		return
	}

	invoices := make([]*model.Invoice, 0, len(req.Invoices))
	for i := range req.Invoices {
		invoices = append(invoices, &req.Invoices[i])
	}
	if len(invoices) == 0 {
		if req.Count < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "batch needs invoices or a positive count"})
			return
		}
		invoices = craft.TestBatch(req.Count)
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generationBudget)
	defer cancel()

	itemErrors := []BatchItemError{}
	result, err := s.engine.GenerateBatch(ctx, invoices, craft.BatchOptions{
		Concurrency: req.Concurrency,
		OnError: func(index int, err error) {
			itemErrors = append(itemErrors, BatchItemError{Index: index, Error: err.Error()})
		},
	})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	resp := BatchResponse{Summary: result.Summary, Errors: itemErrors, Files: []string{}}
	for _, item := range result.Successes {
		resp.Files = append(resp.Files, item.Artifact.Filename)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handlePresets(c *gin.Context) {
	infos := make([]PresetInfo, 0)
	for _, p := range preset.All() {
		infos = append(infos, PresetInfo{Key: p.Key, Name: p.Name})
	}
	c.JSON(http.StatusOK, gin.H{"presets": infos})
}

func (s *Server) handlePresetGenerate(c *gin.Context) {
	p, ok := preset.Get(c.Param("key"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown preset %q", c.Param("key"))})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generationBudget)
	defer cancel()

	artifact, err := s.engine.Generate(ctx, &p.Invoice, &p.Options)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	serveArtifact(c, artifact.Data, artifact.MIMEType, artifact.Filename)
}

func serveArtifact(c *gin.Context, data []byte, mimeType, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, mimeType, data)
}
