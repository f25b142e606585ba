package ses

import (
	"context"
	"fmt"
	"strings"

	"yield-ai/internal/domain/contact"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// API es el subconjunto de *ses.Client que usamos (se mockea en tests).
type API interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Notifier manda un mail a soporte por cada mensaje de contacto.
type Notifier struct {
	client API
	from   string
	to     string
}

func New(client API, from, to string) *Notifier {
	return &Notifier{client: client, from: from, to: to}
}

// NewFromRegion carga credenciales con la cadena default de AWS.
func NewFromRegion(ctx context.Context, region, from, to string) (*Notifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return New(ses.NewFromConfig(cfg), from, to), nil
}

func (n *Notifier) Notify(ctx context.Context, s contact.Submission) error {
	subject := "[Yield-AI contact] " + s.Subject
	body := formatBody(s)

	_, err := n.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{n.to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		ReplyToAddresses: []string{s.Email},
		Source:           aws.String(n.from),
	})
	if err != nil {
		return fmt.Errorf("ses send email: %w", err)
	}
	return nil
}

func formatBody(s contact.Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "Email: %s\n", s.Email)
	if s.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", s.Phone)
	}
	fmt.Fprintf(&b, "Received: %s\n", s.ReceivedAt.UTC().Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "Submission: %s\n\n", s.ID)
	b.WriteString(s.Message)
	return b.String()
}
