package domain

import "time"

type ItemState string

const (
	ItemStateCirculating ItemState = "CIRCULATING"
	ItemStateStored      ItemState = "STORED"
	ItemStateLost        ItemState = "LOST"
	ItemStateDeleted     ItemState = "DELETED"
)

type Item struct {
	Barcode               string    `db:"barcode" json:"barcode"`
	Title                 string    `db:"title" json:"title"`
	Author                string    `db:"author" json:"author"`
	Description           string    `db:"description" json:"description"`
	Subject               string    `db:"subject" json:"subject"`
	PublicationYear       string    `db:"publicationyear" json:"publicationyear"`
	PublisherCode         string    `db:"publishercode" json:"publishercode"`
	Age                   string    `db:"age" json:"age"`
	Media                 string    `db:"media" json:"media"`
	SeriesTitle           string    `db:"seriestitle" json:"seriestitle"`
	Classification        string    `db:"classification" json:"classification"`
	ItemNotes             string    `db:"itemnotes" json:"itemnotes"`
	ReplacementPriceCents int32     `db:"replacementprice_cents" json:"replacementprice_cents"`
	State                 ItemState `db:"state" json:"state"`
	AntolinSticker        bool      `db:"antolin_sticker" json:"antolin_sticker"`
	ISBN10                string    `db:"isbn10" json:"isbn10"`
	ISBN13                string    `db:"isbn13" json:"isbn13"`

	// Attachments populated by the item service.
	Checkout *Checkout       `db:"-" json:"checkout,omitempty"`
	Borrower *Borrower       `db:"-" json:"borrower,omitempty"`
	History  []HistoryRecord `db:"-" json:"history,omitempty"`
	Antolin  *AntolinEntry   `db:"-" json:"antolin,omitempty"`
}

// ItemDetails selects the optional attachments of an item fetch. The active
// checkout and its borrower are always attached when present.
type ItemDetails struct {
	History bool
}

// CheckedOutItem pairs an item with one of its loan records, active or past.
type CheckedOutItem struct {
	Item     Item     `json:"item"`
	Checkout Checkout `json:"checkout"`
}

// CheckoutResult is the composed view returned by checkout, renew and checkin.
type CheckoutResult struct {
	Borrower *Borrower `json:"borrower,omitempty"`
	Item     *Item     `json:"item"`
	Checkout *Checkout `json:"checkout"`
}

// ItemUsage is one row of the stale-item report: an item and the date it was
// last checked out.
type ItemUsage struct {
	Barcode          string    `db:"barcode" json:"barcode"`
	Title            string    `db:"title" json:"title"`
	Author           string    `db:"author" json:"author"`
	LastCheckoutDate time.Time `db:"last_checkout_date" json:"last_checkout_date"`
}
