package sns

import (
	"context"
	"fmt"

	"yield-ai/internal/domain/contact"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

type API interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Notifier publica cada mensaje de contacto en un topic SNS (el equipo se suscribe por mail o SMS).
type Notifier struct {
	client   API
	topicARN string
}

func New(client API, topicARN string) *Notifier {
	return &Notifier{client: client, topicARN: topicARN}
}

func NewFromRegion(ctx context.Context, region, topicARN string) (*Notifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return New(sns.NewFromConfig(cfg), topicARN), nil
}

func (n *Notifier) Notify(ctx context.Context, s contact.Submission) error {
	msg := fmt.Sprintf("New contact message from %s <%s>: %s", s.Name, s.Email, s.Subject)

	_, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String("Yield-AI contact"),
		Message:  aws.String(msg),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"submission_id": {DataType: aws.String("String"), StringValue: aws.String(s.ID)},
		},
	})
	if err != nil {
		return fmt.Errorf("sns publish: %w", err)
	}
	return nil
}
