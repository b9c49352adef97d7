package lava

import "github.com/google/uuid"

// NewOrderID returns a unique value for the order_id fields on withdrawal
// and invoice creation. The API rejects a reused order_id, so callers that
// do not track their own identifiers can use this helper.
func NewOrderID() string {
	return uuid.NewString()
}
