package interfaces

import (
	"context"

	"fanvoyage/internal/domain/entities"
)

// IQuoteNotifier abstracts quote email delivery (e.g. Amazon SES).
//
// Delivery is best-effort: a failed send never rolls back the generated
// quote, the caller only skips the emailed marker.
type IQuoteNotifier interface {
	SendQuote(ctx context.Context, recipient string, lead entities.Lead, q entities.Quote) error
}
