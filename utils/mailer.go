package utils

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/rs/zerolog/log"
)

var (
	sesClient *ses.Client
	sesOnce   sync.Once
)

func client() (*ses.Client, error) {
	var initErr error
	sesOnce.Do(func() {
		cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
			awsconfig.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			initErr = err
			return
		}
		sesClient = ses.NewFromConfig(cfg)
	})
	if sesClient == nil {
		return nil, fmt.Errorf("ses client init failed: %w", initErr)
	}
	return sesClient, nil
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	c, err := client()
	if err != nil {
		return err
	}
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err = c.SendEmail(context.TODO(), input)
	if err != nil {
		log.Error().Err(err).Str("to", to).Msg("ses send failed")
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendResetEmail delivers the password-reset code.
func SendResetEmail(to string, code string) error {
	subject := "Your password reset code"
	body := fmt.Sprintf("Your password reset code is: %s\n\nIt expires shortly. Use it in the app to set a new password.", code)
	return sendEmail(to, subject, body)
}
