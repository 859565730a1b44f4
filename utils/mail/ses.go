package mail

import (
	"context"
	"encoding/base64"
	"github.com/pkg/errors"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	ses "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/ses/v20201002"
	"go.uber.org/zap"
	"referral_backend/utils"
)

type SESMailer struct {
	client *ses.Client
}

func NewSESMailer(secretID, secretKey, region string) (*SESMailer, error) {
	if secretID == "" || secretKey == "" {
		return nil, errors.New("ses transport requires SECRET_ID and SECRET_KEY")
	}
	credential := common.NewCredential(secretID, secretKey)
	cpf := profile.NewClientProfile()
	cpf.HttpProfile.Endpoint = "ses.tencentcloudapi.com"
	client, err := ses.NewClient(credential, region, cpf)
	if err != nil {
		return nil, errors.Wrap(err, "create ses client")
	}
	return &SESMailer{client: client}, nil
}

func (s *SESMailer) Send(ctx context.Context, message *Message) error {
	request := newSendEmailRequest(message)

	resp, err := s.client.SendEmailWithContext(ctx, request)
	if err != nil {
		return errors.Wrap(err, "ses send")
	}
	utils.Logger.Info("SendEmailResponse", zap.String("Response", resp.ToJsonString()))
	return nil
}

// newSendEmailRequest builds a simple (non-template) request; ses expects
// the body base64 encoded
func newSendEmailRequest(message *Message) *ses.SendEmailRequest {
	request := ses.NewSendEmailRequest()
	request.FromEmailAddress = common.StringPtr(message.From)
	request.Destination = common.StringPtrs([]string{message.To})
	request.Subject = common.StringPtr(message.Subject)
	request.Simple = &ses.Simple{
		Text: common.StringPtr(base64.StdEncoding.EncodeToString([]byte(message.Text))),
	}
	request.TriggerType = common.Uint64Ptr(1)
	return request
}
