package notify

import (
	"log"

	"github.com/vpeters/high5-api/internal/models"
)

// Notifier is told when a high5 has been given so the receiver can be
// informed. Delivery transport is a deployment concern; implementations must
// not block the request path for long.
type Notifier interface {
	High5Given(receiver *models.User, giver, message string)
}

// LogNotifier writes notifications to the application log. It stands in
// wherever no real delivery channel is configured.
type LogNotifier struct{}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// High5Given logs the notification that would be sent to the receiver.
func (n *LogNotifier) High5Given(receiver *models.User, giver, message string) {
	log.Printf("high5 for %s <%s> from %s: %s", receiver.Username, receiver.Email, giver, message)
}
