package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fanvoyage/internal/domain/entities"
	"fanvoyage/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"go.uber.org/zap"
)

var (
	ErrMissingSender         = errors.New("missing mail sender address")
	ErrNotifierNotConfigured = errors.New("mail notifier not configured")
)

// SESNotifier delivers quote emails through Amazon SES.
//
// Mock mode skips the external call and only logs, which keeps local
// development and tests free of AWS credentials.
type SESNotifier struct {
	client   *sesv2.Client
	sender   string
	mockMode bool
	log      *zap.Logger
}

var _ interfaces.IQuoteNotifier = (*SESNotifier)(nil)

func NewSESNotifier(ctx context.Context, region, sender string, mockMode bool, log *zap.Logger) (*SESNotifier, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if mockMode {
		log.Info("mail notifier mock mode enabled")
		return &SESNotifier{mockMode: true, sender: sender, log: log}, nil
	}

	if strings.TrimSpace(sender) == "" {
		return nil, ErrMissingSender
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SESNotifier{
		client: sesv2.NewFromConfig(awsCfg),
		sender: sender,
		log:    log,
	}, nil
}

func (n *SESNotifier) SendQuote(ctx context.Context, recipient string, lead entities.Lead, q entities.Quote) error {
	if n != nil && n.mockMode {
		n.log.Info("mock quote email",
			zap.String("recipient", recipient),
			zap.String("quote_id", q.ID))
		return nil
	}
	if n == nil || n.client == nil {
		return ErrNotifierNotConfigured
	}

	subject := fmt.Sprintf("Your travel quote %s", q.ID)
	body := buildQuoteBody(lead, q)

	_, err := n.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.sender),
		Destination: &types.Destination{
			ToAddresses: []string{recipient},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	})
	if err != nil {
		return err
	}

	n.log.Info("quote email sent",
		zap.String("recipient", recipient),
		zap.String("quote_id", q.ID))
	return nil
}

func buildQuoteBody(lead entities.Lead, q entities.Quote) string {
	var b strings.Builder

	name := lead.Name
	if name == "" {
		name = "traveler"
	}
	fmt.Fprintf(&b, "Hi %s,\n\n", name)
	fmt.Fprintf(&b, "Here is your quote for %d traveler(s), %s to %s.\n\n",
		q.Travelers,
		q.TravelStart.Format("2006-01-02"),
		q.TravelEnd.Format("2006-01-02"))
	fmt.Fprintf(&b, "Total: %.2f %s\n", q.FinalPrice, q.Currency)
	if q.CalculationNotes != "" {
		fmt.Fprintf(&b, "Details: %s\n", q.CalculationNotes)
	}
	fmt.Fprintf(&b, "\nThis quote is valid until %s.\n", q.ExpiresAt.Format(time.RFC1123))

	return b.String()
}
