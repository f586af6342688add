package team

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/don-Savage01/universe-ofhair-sub001/internal/database"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/models"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/services"
)

const teamColumns = `member_id, name, role, description, display_order, active, image_url, created_at, updated_at`

type teamMemberInput struct {
	Name         string `json:"name" binding:"required"`
	Role         string `json:"role" binding:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	Active       *bool  `json:"active"`
}

func CreateTeamMember(c *gin.Context) {
	var in teamMemberInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetShopSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	now := time.Now()
	m := models.TeamMember{
		ID:           gocql.TimeUUID(),
		Name:         in.Name,
		Role:         in.Role,
		Description:  in.Description,
		DisplayOrder: in.DisplayOrder,
		Active:       active,
		CreatedAt:    &now,
		UpdatedAt:    &now,
	}

	query := `INSERT INTO team_members (` + teamColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if err := session.Query(query, m.ID, m.Name, m.Role, m.Description, m.DisplayOrder, m.Active,
		m.ImageURL, m.CreatedAt, m.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Team member creation failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, m)
}

func GetTeamMembers(c *gin.Context) {
	session, err := database.GetShopSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	iter := session.Query(`SELECT ` + teamColumns + ` FROM team_members`).Iter()

	members := []models.TeamMember{}
	var m models.TeamMember
	for iter.Scan(&m.ID, &m.Name, &m.Role, &m.Description, &m.DisplayOrder, &m.Active, &m.ImageURL,
		&m.CreatedAt, &m.UpdatedAt) {
		members = append(members, m)
		m = models.TeamMember{}
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Team member read failed: " + err.Error()})
		return
	}

	// Sort key is display_order; ties keep insertion (timeuuid) order
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].DisplayOrder < members[j].DisplayOrder
	})

	c.JSON(http.StatusOK, members)
}

func UpdateTeamMember(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team member id"})
		return
	}

	var in teamMemberInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetShopSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	var existing models.TeamMember
	if err := session.Query(`SELECT `+teamColumns+` FROM team_members WHERE member_id = ?`, id).
		Scan(&existing.ID, &existing.Name, &existing.Role, &existing.Description, &existing.DisplayOrder,
			&existing.Active, &existing.ImageURL, &existing.CreatedAt, &existing.UpdatedAt); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		return
	}

	active := existing.Active
	if in.Active != nil {
		active = *in.Active
	}

	now := time.Now()
	query := `UPDATE team_members SET name = ?, role = ?, description = ?, display_order = ?, active = ?,
		updated_at = ? WHERE member_id = ?`
	if err := session.Query(query, in.Name, in.Role, in.Description, in.DisplayOrder, active, &now, id).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Team member update failed: " + err.Error()})
		return
	}

	existing.Name = in.Name
	existing.Role = in.Role
	existing.Description = in.Description
	existing.DisplayOrder = in.DisplayOrder
	existing.Active = active
	existing.UpdatedAt = &now

	c.JSON(http.StatusOK, existing)
}

func DeleteTeamMember(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team member id"})
		return
	}

	session, err := database.GetShopSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	// Drop the stored photo along with the row, best effort
	var imageURL string
	if err := session.Query(`SELECT image_url FROM team_members WHERE member_id = ?`, id).Scan(&imageURL); err == nil && imageURL != "" {
		RemovePhoto(context.Background(), services.MinioPhotoStore{}, imageURL)
	}

	if err := session.Query(`DELETE FROM team_members WHERE member_id = ?`, id).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Team member deletion failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team member deleted", "id": id.String()})
}

// UploadTeamMemberImage replaces a member's photo. The old storage object is
// deleted best effort before the new one is uploaded.
func UploadTeamMemberImage(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team member id"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}
	defer file.Close()

	session, err := database.GetShopSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	var oldImageURL string
	if err := session.Query(`SELECT image_url FROM team_members WHERE member_id = ?`, id).Scan(&oldImageURL); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		return
	}

	ctx := context.Background()
	url, err := ReplacePhoto(ctx, services.MinioPhotoStore{}, oldImageURL,
		header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	if err := session.Query(`UPDATE team_members SET image_url = ?, updated_at = ? WHERE member_id = ?`,
		url, &now, id).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image URL update failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image uploaded", "image_url": url})
}
