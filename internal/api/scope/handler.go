package scope

import (
	"fmt"
	"net/http"

	"freelanceros/database"
	"freelanceros/internal/api/projects"
	domainprojects "freelanceros/internal/domain/projects"
	"freelanceros/internal/domain/scope"

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

func toVersionDTO(v scope.ScopeVersion) ScopeVersionDTO {
	return ScopeVersionDTO{
		ID:            v.ID,
		ProjectID:     v.ProjectID,
		VersionNumber: v.VersionNumber,
		Deliverables:  v.Deliverables,
		OutOfScope:    v.OutOfScope,
		Assumptions:   v.Assumptions,
		ShareToken:    v.ShareToken,
		ShareURL:      scope.BuildShareURL(v.ShareToken),
		CreatedAt:     v.CreatedAt,
	}
}

// GET /projects/:id/scope
func ListVersions(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var proj domainprojects.Project
	if err := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&proj).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var versions []scope.ScopeVersion
	if err := database.DB.
		Where("project_id = ?", proj.ID).
		Order("version_number DESC").
		Find(&versions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load scope versions"})
		return
	}

	out := make([]ScopeVersionDTO, 0, len(versions))
	for _, v := range versions {
		out = append(out, toVersionDTO(v))
	}
	c.JSON(http.StatusOK, out)
}

// POST /projects/:id/scope - append-only: version_number = previous max + 1,
// fresh share token, timeline event naming both versions.
func CreateVersion(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var proj domainprojects.Project
	if err := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&proj).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var req CreateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var v scope.ScopeVersion
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var prev int
		row := tx.Model(&scope.ScopeVersion{}).
			Where("project_id = ?", proj.ID).
			Select("COALESCE(MAX(version_number), 0)").
			Row()
		if err := row.Scan(&prev); err != nil {
			return err
		}

		v = scope.ScopeVersion{
			UserID:        userID,
			ProjectID:     proj.ID,
			VersionNumber: prev + 1,
			Deliverables:  req.Deliverables,
			OutOfScope:    req.OutOfScope,
			Assumptions:   req.Assumptions,
			ShareToken:    scope.NewShareToken(),
		}
		if err := tx.Create(&v).Error; err != nil {
			return err
		}

		var desc string
		if prev == 0 {
			desc = "Scope v1 created"
		} else {
			desc = fmt.Sprintf("Scope updated from v%d to v%d", prev, prev+1)
		}
		return projects.LogEvent(tx, userID, proj.ID, domainprojects.EventScope, desc)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create scope version"})
		return
	}

	c.JSON(http.StatusCreated, toVersionDTO(v))
}

// GET /scope/:id
func GetVersion(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var v scope.ScopeVersion
	if err := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&v).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scope version not found"})
		return
	}

	c.JSON(http.StatusOK, toVersionDTO(v))
}

// GET /scope/share/:token - public, read-only; the token resolves exactly
// one snapshot.
func GetSharedVersion(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scope version not found"})
		return
	}

	var v scope.ScopeVersion
	if err := database.DB.Preload("Project").
		Where("share_token = ?", token).
		First(&v).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scope version not found"})
		return
	}

	c.JSON(http.StatusOK, SharedScopeDTO{
		ProjectName:   v.Project.Name,
		VersionNumber: v.VersionNumber,
		Deliverables:  v.Deliverables,
		OutOfScope:    v.OutOfScope,
		Assumptions:   v.Assumptions,
		CreatedAt:     v.CreatedAt,
	})
}
