package controllers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"storefront-backend/config"
	"storefront-backend/services"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"storefront-backend/utils"
)

// ImportCSV handles a CSV upload for one of the three record kinds. The file
// is decoded here (trying encodings in a fixed order) and handed to the
// import service as text; the response carries the counts plus a pointer to
// the error log when anything failed.
func ImportCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("csv_file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "csv_file is required")
		return
	}

	modelType := c.PostForm("model_type")
	if modelType != "customer" && modelType != "product" && modelType != "order" {
		utils.RespondWithError(c, http.StatusBadRequest, "model_type must be one of: customer, product, order")
		return
	}

	deleteExisting := c.PostForm("delete_option") == "replace"

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		utils.RespondWithError(c, http.StatusBadRequest, "Please upload a CSV file (.csv extension)")
		return
	}
	if fileHeader.Size == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Uploaded file is empty")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	decoded, encodingUsed, err := utils.DecodeText(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Unable to decode the file. Please use UTF-8 encoding.")
		return
	}
	log.Printf("Decoded upload %s with %s", fileHeader.Filename, encodingUsed)

	logDir := config.ErrorLogDir()
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create error log directory")
		return
	}
	logFilename := fmt.Sprintf("import_errors_%s_%s.txt", modelType, time.Now().Format("20060102_150405"))
	logPath := filepath.Join(logDir, logFilename)

	svc := services.NewImportService(config.DB)
	ctx := c.Request.Context()

	var successCount, errorCount int
	var errorSamples []string

	switch modelType {
	case "customer":
		successCount, errorCount, errorSamples = svc.ImportCustomers(ctx, decoded, logPath, encodingUsed, deleteExisting)
	case "product":
		successCount, errorCount, errorSamples = svc.ImportProducts(ctx, decoded, logPath, encodingUsed, deleteExisting)
	case "order":
		successCount, errorCount, errorSamples = svc.ImportOrders(ctx, decoded, logPath, encodingUsed, deleteExisting)
	}

	if errorCount == 0 && successCount > 0 {
		c.JSON(http.StatusOK, gin.H{
			"message":       fmt.Sprintf("✅ Successfully imported %d %s records!", successCount, modelType),
			"success_count": successCount,
			"error_count":   errorCount,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("⚠️ Import completed with %d successful and %d failed records. Error log saved to: %s",
			successCount, errorCount, logFilename),
		"success_count": successCount,
		"error_count":   errorCount,
		"errors":        errorSamples,
		"error_log":     logFilename,
	})
}

// DownloadErrorLog serves a previously written import error log.
func DownloadErrorLog(c *gin.Context) {
	filename := c.Param("filename")

	// The log dir only ever holds generated logs; refuse anything that
	// could point outside it
	if filename != filepath.Base(filename) || !strings.HasPrefix(filename, "import_errors_") {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid log filename")
		return
	}

	path := filepath.Join(config.ErrorLogDir(), filename)
	if _, err := os.Stat(path); err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Error log file not found")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "text/plain")
	c.File(path)
}
