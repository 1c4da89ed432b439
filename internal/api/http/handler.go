package httpapi

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	app "damage-scan/internal/application"
	"damage-scan/internal/domain/entity"
)

// Handler обслуживает REST-эндпоинты оценки повреждений.
type Handler struct {
	inspections *app.InspectionService
	modelID     string
}

// NewHandler создаёт HTTP-обработчик.
func NewHandler(inspections *app.InspectionService, modelID string) *Handler {
	return &Handler{
		inspections: inspections,
		modelID:     modelID,
	}
}

// Detect обрабатывает POST /api/detect: одно фото, полный отчёт.
func (h *Handler) Detect(c *gin.Context) {
	imageData, ok := readUpload(c, "file")
	if !ok {
		return
	}

	report, err := h.inspections.Inspect(c.Request.Context(), imageData)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "report": report})
}

// Compare обрабатывает POST /api/compare: фото выдачи и возврата.
func (h *Handler) Compare(c *gin.Context) {
	pickupData, ok := readUpload(c, "pickup_image")
	if !ok {
		return
	}
	returnData, ok := readUpload(c, "return_image")
	if !ok {
		return
	}

	report, err := h.inspections.Compare(c.Request.Context(), pickupData, returnData)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "report": report})
}

// Health обрабатывает GET /api/health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"model":          h.modelID,
		"damage_classes": len(entity.Classes()),
	})
}

// DamageClasses обрабатывает GET /api/damage-classes.
func (h *Handler) DamageClasses(c *gin.Context) {
	classes := entity.Classes()

	names := make([]string, 0, len(classes))
	categories := make(map[entity.Category][]string)
	for _, class := range classes {
		names = append(names, class.Name)
		categories[class.Category] = append(categories[class.Category], class.Name)
	}

	c.JSON(http.StatusOK, gin.H{
		"total_classes": len(classes),
		"classes":       names,
		"categories":    categories,
	})
}

// RepairCosts обрабатывает GET /api/repair-costs.
func (h *Handler) RepairCosts(c *gin.Context) {
	matrix := entity.DefaultCostMatrix()

	costs := make(map[string]map[entity.Severity]int)
	for key, cost := range matrix {
		if costs[key.Class] == nil {
			costs[key.Class] = make(map[entity.Severity]int, len(entity.Severities))
		}
		costs[key.Class][key.Severity] = cost
	}

	c.JSON(http.StatusOK, gin.H{
		"currency": "USD",
		"costs":    costs,
	})
}

// respondError переводит ошибку конвейера в HTTP-статус.
func (h *Handler) respondError(c *gin.Context, err error) {
	log.Printf("Inspection error: %v", err)

	if errors.Is(err, entity.ErrDetectionUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
}

// readUpload читает загруженный файл из multipart-формы.
func readUpload(c *gin.Context, field string) ([]byte, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "no file uploaded: " + field})
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "failed to open upload"})
		return nil, false
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	data, err := io.ReadAll(file)
	if err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "failed to read upload"})
		return nil, false
	}

	return data, true
}
