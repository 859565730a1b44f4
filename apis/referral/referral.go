package referral

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	. "referral_backend/utils"
	"referral_backend/utils/mail"
	"time"
)

// CreateReferral godoc
//
//	@Summary		refer a friend to a course
//	@Description	validate the submission, store it, then email the friend
//	@Tags			referral
//	@Accept			json
//	@Produce		json
//	@Router			/referral [post]
//	@Param			json	body		CreateReferralRequest	true	"json"
//	@Success		201		{object}	CreateReferralResponse
//	@Failure		400		{object}	utils.ErrorResponse	"invalid fields"
//	@Failure		429		{object}	utils.ErrorResponse
//	@Failure		500		{object}	utils.ErrorResponse
func CreateReferral(c *fiber.Ctx) error {
	var body CreateReferralRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	if !allowReferral() {
		return TooManyRequests()
	}

	ctx := c.UserContext()

	referral := body.ToModel()
	err = referral.Create(ctx)
	if err != nil {
		referralStoreFailureCounter.Inc()
		return err
	}

	// the record stays even if the email fails
	startTime := time.Now()
	err = mail.Send(ctx, newInvitation(referral))
	referralMailDuration.Observe(time.Since(startTime).Seconds())
	if err != nil {
		referralMailFailureCounter.Inc()
		return errors.Wrapf(err, "referral %d stored, invitation not sent", referral.ID)
	}

	referralCreatedCounter.Inc()
	return c.Status(fiber.StatusCreated).JSON(CreateReferralResponse{
		Message: "Referral sent successfully!",
		Data:    referral,
	})
}
