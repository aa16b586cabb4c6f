package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//
// --- Contact Handler ---
//

// ContactInput is the JSON body for POST /contact. All four fields are
// required; a miss is a 400 before any mail is attempted.
type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact is the handler for POST /contact. The submission goes out via
// SMTP, independent of the core backend. On failure the caller keeps the
// entered values and shows the error; on success it clears the form.
func (h *Handlers) SubmitContact(c *gin.Context) {
	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required: " + err.Error()})
		return
	}

	reference := uuid.NewString()
	if err := h.Mailer.SendContactSubmission(input.Name, input.Email, input.Subject, input.Message, reference); err != nil {
		log.Printf("contact: send failed (ref %s): %v", reference, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send message, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Message sent successfully",
		"reference": reference,
	})
}
