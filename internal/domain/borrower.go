package domain

// CardNumberBase is added to a borrower number to derive the library card number.
const CardNumberBase = 100000000

type Borrower struct {
	BorrowerNumber int32  `db:"borrowernumber" json:"borrowernumber"`
	CardNumber     int32  `db:"cardnumber" json:"cardnumber"`
	FirstName      string `db:"firstname" json:"firstname"`
	ContactName    string `db:"contactname" json:"contactname"`
	Surname        string `db:"surname" json:"surname"`
	StreetAddress  string `db:"streetaddress" json:"streetaddress"`
	City           string `db:"city" json:"city"`
	Zipcode        string `db:"zipcode" json:"zipcode"`
	Phone          string `db:"phone" json:"phone"`
	EmailAddress   string `db:"emailaddress" json:"emailaddress"`
	EmailAddress2  string `db:"emailaddress_2" json:"emailaddress_2"`
	State          string `db:"state" json:"state"`

	// Optional attachments, populated on request only. A nil field means the
	// caller did not ask for it, not that it is empty.
	Items   []CheckedOutItem `db:"-" json:"items,omitempty"`
	History []CheckedOutItem `db:"-" json:"history,omitempty"`
	Fees    *Fees            `db:"-" json:"fees,omitempty"`
}

// DeriveCardNumber fills in the card number from the borrower number.
// The card number is never stored independently.
func (b *Borrower) DeriveCardNumber() {
	b.CardNumber = CardNumberBase + b.BorrowerNumber
}

// BorrowerDetails selects the optional attachments of a borrower fetch.
type BorrowerDetails struct {
	Items   bool
	History bool
	Fees    bool
}

// Fees is the derived fee aggregate of a single borrower. It is always
// recomputed from the checkout and history rows, never cached.
type Fees struct {
	TotalCents int32            `json:"total_cents"`
	Items      []CheckedOutItem `json:"items"`
	History    []CheckedOutItem `json:"history"`
}

// BorrowerFeeSummary is one row of the library-wide fee report.
type BorrowerFeeSummary struct {
	BorrowerNumber int32  `json:"borrowernumber"`
	Surname        string `json:"surname"`
	ContactName    string `json:"contactname"`
	FirstName      string `json:"firstname"`
	NewFeeCents    int32  `json:"new_fee_cents"`
	OldFeeCents    int32  `json:"old_fee_cents"`
	FeeCents       int32  `json:"fee_cents"`
}
