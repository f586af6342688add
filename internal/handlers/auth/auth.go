package auth

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/don-Savage01/universe-ofhair-sub001/internal/database"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/models"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/utils"
)

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an admin. Password check first, then the single
// capability check against the profile role: a valid password on a
// non-admin profile is still Unauthorized and no session is issued.
func Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetAdminSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	var profile models.Profile
	if err := session.Query(`SELECT profile_id, email, name, password, role FROM profiles WHERE email = ?`, in.Email).
		Scan(&profile.ID, &profile.Email, &profile.Name, &profile.Password, &profile.Role); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	ok, err := utils.VerifyPassword(in.Password, profile.Password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !profile.IsAdmin() {
		log.Printf("⚠️ Login rejected for %s: profile role is %q", profile.Email, profile.Role)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	token, err := utils.GenerateJWT(profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}

	log.Printf("✅ Admin login: %s", profile.Email)

	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"userId": profile.ID.String(),
		"email":  profile.Email,
		"name":   profile.Name,
		"role":   profile.Role,
	})
}
