package entity

// Address is a shipping address from the user's address book.
type Address struct {
	ID            int64  `json:"id,omitempty"` // Server address ID, zero until saved.
	ReceiverName  string `json:"receiverName,omitempty"`
	ReceiverPhone string `json:"receiverPhone,omitempty"`
	AddressLine1  string `json:"addressLine1"`
	AddressLine2  string `json:"addressLine2,omitempty"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country,omitempty"`
	IsDefault     bool   `json:"isDefault"`
}

// DefaultAddress picks the address used to pre-populate checkout:
// the first flagged default, otherwise the first address returned.
func DefaultAddress(addresses []*Address) *Address {
	for _, addr := range addresses {
		if addr.IsDefault {
			return addr
		}
	}
	if len(addresses) > 0 {
		return addresses[0]
	}

	return nil
}
