package handler

import (
	"time"

	"github.com/prospectio/outreach-system/internal/core/domain"
)

type registerRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	LinkedinEmail string `json:"linkedinEmail"`
}

// missingFields returns the names of required registration fields absent
// from the request, in declaration order.
func (r registerRequest) missingFields() []string {
	var missing []string
	if r.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if r.LastName == "" {
		missing = append(missing, "lastName")
	}
	if r.Email == "" {
		missing = append(missing, "email")
	}
	if r.Password == "" {
		missing = append(missing, "password")
	}
	if r.LinkedinEmail == "" {
		missing = append(missing, "linkedinEmail")
	}
	return missing
}

// missingFieldsResponse is returned only by registration; other endpoints
// use the plain {"error": ...} envelope.
type missingFieldsResponse struct {
	Error         string   `json:"error"`
	MissingFields []string `json:"missingFields"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the user view returned by auth and profile endpoints.
// It never carries password material.
type userResponse struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	LinkedinEmail string    `json:"linkedinEmail,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		LinkedinEmail: u.LinkedinEmail,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

type registerResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
	Token   string       `json:"token"`
}

type loginResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type updateProfileRequest struct {
	FirstName       *string `json:"firstName,omitempty"`
	LastName        *string `json:"lastName,omitempty"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email"`
	CurrentPassword *string `json:"currentPassword,omitempty"`
	NewPassword     *string `json:"newPassword,omitempty"`
	ConfirmPassword *string `json:"confirmPassword,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}
