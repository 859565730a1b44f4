package referral

import "referral_backend/models"

type CreateReferralRequest struct {
	YourName    string `json:"yourName" minLength:"2" validate:"min=2" message:"Your name must be at least 2 characters"`
	YourEmail   string `json:"yourEmail" validate:"email" message:"Invalid email format"`
	FriendName  string `json:"friendName" minLength:"2" validate:"min=2" message:"Friend's name must be at least 2 characters"`
	FriendEmail string `json:"friendEmail" validate:"email" message:"Invalid email format"`
	CourseName  string `json:"courseName" minLength:"3" validate:"min=3" message:"Course name must be at least 3 characters"`
	CourseURL   string `json:"courseURL" validate:"url" message:"Invalid URL format"`
}

// ToModel copies the validated fields; id and createdAt are left to the store
func (body *CreateReferralRequest) ToModel() *models.Referral {
	return &models.Referral{
		YourName:    body.YourName,
		YourEmail:   body.YourEmail,
		FriendName:  body.FriendName,
		FriendEmail: body.FriendEmail,
		CourseName:  body.CourseName,
		CourseURL:   body.CourseURL,
	}
}

type CreateReferralResponse struct {
	Message string           `json:"message"`
	Data    *models.Referral `json:"data"`
}
