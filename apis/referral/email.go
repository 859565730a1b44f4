package referral

import (
	"fmt"
	"referral_backend/models"
	"referral_backend/utils/mail"
)

const invitationSubject = "Course Referral Invitation"

func newInvitation(referral *models.Referral) *mail.Message {
	return &mail.Message{
		To:      referral.FriendEmail,
		Subject: invitationSubject,
		Text: fmt.Sprintf(
			"Hi %s,\n\n%s has referred you to check out the course: \"%s\"\nYou can find more details at: %s\n\nBest Regards,\nCourse Team",
			referral.FriendName,
			referral.YourName,
			referral.CourseName,
			referral.CourseURL,
		),
	}
}
