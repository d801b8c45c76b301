package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateTransactionID builds a merchant transaction reference the gateway
// accepts as transactionId. The prefix identifies the order source, the
// timestamp keeps references sortable, the UUID fragment guarantees
// uniqueness across concurrent checkouts.
func GenerateTransactionID(prefix string) string {
	timestamp := time.Now().Format("20060102150405")
	fragment := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%s-%s-%s", prefix, timestamp, strings.ToUpper(fragment))
}
