package projects

import (
	"fmt"
	"net/http"

	"freelanceros/database"
	"freelanceros/internal/domain/clients"
	"freelanceros/internal/domain/projects"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func toProjectDTO(p projects.Project) ProjectDTO {
	return ProjectDTO{
		ID:          p.ID,
		ClientID:    p.ClientID,
		ClientName:  p.Client.Name,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		StartDate:   p.StartDate,
		Deadline:    p.Deadline,
		CreatedAt:   p.CreatedAt,
	}
}

// GET /projects?status=&client_id=
func ListProjects(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	q := userProjectsQuery(database.DB, userID).Preload("Client")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}

	var list []projects.Project
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}

	out := make([]ProjectDTO, 0, len(list))
	for _, p := range list {
		out = append(out, toProjectDTO(p))
	}
	c.JSON(http.StatusOK, out)
}

// GET /projects/:id - project plus its timeline.
func GetProject(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var p projects.Project
	if err := database.DB.Preload("Client").
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&p).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var events []projects.TimelineEvent
	if err := database.DB.
		Where("project_id = ?", p.ID).
		Order("created_at DESC").
		Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load timeline"})
		return
	}

	timeline := make([]TimelineEventDTO, 0, len(events))
	for _, e := range events {
		timeline = append(timeline, TimelineEventDTO{
			ID:          e.ID,
			EventType:   e.EventType,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"project": toProjectDTO(p), "timeline": timeline})
}

// POST /projects
func CreateProject(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = projects.StatusLead
	}
	if !projects.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown project status"})
		return
	}

	// client must belong to the caller
	var cl clients.Client
	if err := database.DB.
		Where("id = ? AND user_id = ?", req.ClientID, userID).
		First(&cl).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	p := projects.Project{
		UserID:      userID,
		ClientID:    cl.ID,
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		StartDate:   req.StartDate,
		Deadline:    req.Deadline,
	}

	if err := database.DB.Create(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}
	p.Client = cl

	c.JSON(http.StatusCreated, toProjectDTO(p))
}

// PUT /projects/:id - a status change is logged to the timeline.
func UpdateProject(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var p projects.Project
	if err := database.DB.Preload("Client").
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&p).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	statusChanged := false
	oldStatus := p.Status

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.Deadline != nil {
		updates["deadline"] = *req.Deadline
	}
	if req.Status != nil && *req.Status != p.Status {
		if !projects.ValidStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown project status"})
			return
		}
		updates["status"] = *req.Status
		statusChanged = true
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, toProjectDTO(p))
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&p).Updates(updates).Error; err != nil {
			return err
		}
		if statusChanged {
			desc := fmt.Sprintf("Status changed from %s to %s", oldStatus, *req.Status)
			return LogEvent(tx, userID, p.ID, projects.EventStatusChange, desc)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, toProjectDTO(p))
}

// POST /projects/:id/notes
func AddNote(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var p projects.Project
	if err := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&p).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := LogEvent(database.DB, userID, p.ID, projects.EventNote, req.Note); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add note"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Note added"})
}

// DELETE /projects/:id
func DeleteProject(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var p projects.Project
	if err := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&p).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", p.ID).Delete(&projects.TimelineEvent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
