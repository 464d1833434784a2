package entity

// UserType represents the kind of participant an account registers as.
type UserType string

const (
	// UserTypeBuyer indicates a regular buyer account.
	UserTypeBuyer UserType = "buyer"
	// UserTypeSeller indicates an individual seller account.
	UserTypeSeller UserType = "seller"
	// UserTypeShop indicates a shop-owner account.
	UserTypeShop UserType = "shop"
)

// String returns the string representation of the UserType.
func (t UserType) String() string {
	return string(t)
}

// IsValid checks if the UserType is a valid value.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeBuyer, UserTypeSeller, UserTypeShop:
		return true
	default:
		return false
	}
}
