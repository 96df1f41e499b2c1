package handlers

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"restaurant-orders-api/models"
	"restaurant-orders-api/validation"
)

// VisitorHandler is the CRM side: visitor records keyed by normalized
// phone number plus a per-visitor contact log.
type VisitorHandler struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewVisitorHandler(db *gorm.DB) *VisitorHandler {
	return &VisitorHandler{DB: db, validate: validation.New()}
}

type visitorRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Phone   string `json:"phone" validate:"required"`
	OptedIn *bool  `json:"opted_in"`
	Source  string `json:"source" validate:"omitempty,oneof=website menu referral walk-in other"`
	Notes   string `json:"notes" validate:"omitempty,max=500"`
}

type contactRequest struct {
	Channel string `json:"channel" validate:"required,oneof=whatsapp sms manual"`
	Action  string `json:"action" validate:"required"`
	Body    string `json:"body" validate:"required"`
	Admin   string `json:"admin"`
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonPhoneRe   = regexp.MustCompile(`[^\d+]`)
)

// normalizePhone strips whitespace and everything that is not a digit
// or a leading plus, so "+91 99999 99999" and "9999999999" compare the
// way the CRM expects.
func normalizePhone(phone string) string {
	phone = whitespaceRe.ReplaceAllString(phone, "")
	return nonPhoneRe.ReplaceAllString(phone, "")
}

// List handles GET /api/visitors
func (h *VisitorHandler) List(c *gin.Context) {
	var visitors []models.Visitor
	if err := h.DB.Order("created_at desc").Find(&visitors).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch visitors", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": visitors, "count": len(visitors)})
}

// Create handles POST /api/visitors. Duplicate detection runs on the
// normalized phone, so formatting variants of one number collide.
func (h *VisitorHandler) Create(c *gin.Context) {
	req, ok := h.bindVisitor(c)
	if !ok {
		return
	}

	phone := normalizePhone(req.Phone)

	var existing models.Visitor
	err := h.DB.Where("phone = ?", phone).First(&existing).Error
	if err == nil {
		respondError(c, http.StatusConflict, "Visitor already exists",
			"A visitor with this phone number already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusInternalServerError, "Failed to create visitor", err.Error())
		return
	}

	visitor := models.Visitor{
		Name:    req.Name,
		Phone:   phone,
		OptedIn: req.OptedIn == nil || *req.OptedIn,
		Source:  models.VisitorSource(req.Source),
		Notes:   req.Notes,
	}
	if err := h.DB.Create(&visitor).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create visitor", err.Error())
		return
	}

	respondMessage(c, http.StatusCreated, visitor, "Visitor created successfully")
}

// Get handles GET /api/visitors/:id
func (h *VisitorHandler) Get(c *gin.Context) {
	var visitor models.Visitor
	if err := h.DB.First(&visitor, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Visitor not found", "")
		return
	}
	respondData(c, http.StatusOK, visitor)
}

// Update handles PUT /api/visitors/:id
func (h *VisitorHandler) Update(c *gin.Context) {
	var visitor models.Visitor
	if err := h.DB.First(&visitor, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Visitor not found", "")
		return
	}

	req, ok := h.bindVisitor(c)
	if !ok {
		return
	}

	visitor.Name = req.Name
	visitor.Phone = normalizePhone(req.Phone)
	visitor.OptedIn = req.OptedIn == nil || *req.OptedIn
	visitor.Source = models.VisitorSource(req.Source)
	visitor.Notes = req.Notes

	if err := h.DB.Save(&visitor).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to update visitor", err.Error())
		return
	}

	respondMessage(c, http.StatusOK, visitor, "Visitor updated successfully")
}

// Delete handles DELETE /api/visitors/:id. Deleting a missing visitor
// still reports success, matching what the frontend relies on.
func (h *VisitorHandler) Delete(c *gin.Context) {
	if err := h.DB.Delete(&models.Visitor{}, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete visitor", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Visitor deleted successfully"})
}

// LogContact handles POST /api/visitors/:id/contact
func (h *VisitorHandler) LogContact(c *gin.Context) {
	var visitor models.Visitor
	if err := h.DB.First(&visitor, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Visitor not found", "")
		return
	}

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if !h.validateRequest(c, req) {
		return
	}

	entry := models.MessageLog{
		VisitorID: visitor.ID,
		Channel:   models.MessageChannel(req.Channel),
		Action:    req.Action,
		Body:      req.Body,
		Admin:     req.Admin,
	}
	if err := h.DB.Create(&entry).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to log contact", err.Error())
		return
	}

	respondMessage(c, http.StatusCreated, entry, "Contact logged successfully")
}

// Messages handles GET /api/visitors/:id/messages
func (h *VisitorHandler) Messages(c *gin.Context) {
	var logs []models.MessageLog
	err := h.DB.Where("visitor_id = ?", c.Param("id")).
		Order("created_at desc").
		Find(&logs).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch messages", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": logs, "count": len(logs)})
}

func (h *VisitorHandler) bindVisitor(c *gin.Context) (visitorRequest, bool) {
	var req visitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return req, false
	}
	if !h.validateRequest(c, req) {
		return req, false
	}
	return req, true
}

// validateRequest runs the schema and answers 400 with field details on
// failure.
func (h *VisitorHandler) validateRequest(c *gin.Context, req any) bool {
	err := h.validate.Struct(req)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Validation error",
			"details": validation.Details(verrs),
		})
		return false
	}
	respondError(c, http.StatusInternalServerError, "Validation failed", err.Error())
	return false
}
