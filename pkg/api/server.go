// Package api provides the REST API server for midifile
package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/james-see/midifile/pkg/inspect"
	"github.com/james-see/midifile/pkg/smf"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title MIDIFile API
// @version 1.0
// @description API for inspecting and normalizing Standard MIDI Files
// @host localhost:8080
// @BasePath /api/v1

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.POST("/inspect", handleInspect)
		v1.POST("/normalize", handleNormalize)
		v1.GET("/formats", listFormats)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r.Run(fmt.Sprintf(":%d", port))
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "midifile",
	})
}

// listFormats godoc
// @Summary List supported file formats
// @Description Returns the SMF format variants the codec understands
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/v1/formats [get]
func listFormats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"formats": []string{
			smf.Single.String(),
			smf.MultiTrackSync.String(),
			smf.MultiSequenceAsync.String(),
		},
	})
}

// handleInspect godoc
// @Summary Inspect a MIDI file
// @Description Upload a MIDI file and receive a JSON summary
// @Tags inspect
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "MIDI file to inspect"
// @Success 200 {object} inspect.Summary
// @Failure 400 {object} map[string]string
// @Router /api/v1/inspect [post]
func handleInspect(c *gin.Context) {
	data, _, ok := readUpload(c)
	if !ok {
		return
	}

	file, err := smf.Decode(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, inspect.Summarize(file))
}

// handleNormalize godoc
// @Summary Normalize a MIDI file
// @Description Upload a MIDI file and receive it re-encoded canonically
// @Tags normalize
// @Accept multipart/form-data
// @Produce application/octet-stream
// @Param file formData file true "MIDI file to normalize"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/normalize [post]
func handleNormalize(c *gin.Context) {
	data, name, ok := readUpload(c)
	if !ok {
		return
	}

	file, err := smf.Decode(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", name))
	c.Data(http.StatusOK, "audio/midi", file.Encode())
}

func readUpload(c *gin.Context) (data []byte, name string, ok bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return nil, "", false
	}
	defer func() { _ = file.Close() }()

	data, err = io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return nil, "", false
	}
	return data, header.Filename, true
}
