package handler

import (
	"github.com/gin-gonic/gin"

	"munch-pos/internal/apperr"
	"munch-pos/internal/service"
	resp "munch-pos/internal/transport/http/response"
)

type UserHandler struct {
	creds *service.CredentialService
}

func NewUserHandler(creds *service.CredentialService) *UserHandler {
	return &UserHandler{creds: creds}
}

type credentialsIn struct {
	EmailAddress string `json:"emailAddress" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

// Register POST /users/register
func (h *UserHandler) Register(c *gin.Context) {
	var in credentialsIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.Validation(apperr.CodeInvalidFields,
			"Required fields: emailAddress, password"))
		return
	}
	if err := h.creds.Register(c.Request.Context(), in.EmailAddress, in.Password); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Msg(c, "User registration successful")
}

// Login POST /users/login
func (h *UserHandler) Login(c *gin.Context) {
	var in credentialsIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.Validation(apperr.CodeInvalidFields,
			"Required fields: emailAddress, password"))
		return
	}
	token, err := h.creds.Login(c.Request.Context(), in.EmailAddress, in.Password)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "User login successful", "token": token})
}
