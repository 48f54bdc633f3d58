package domain

import (
	"fmt"
	"time"
)

// AntolinEntry is third-party bibliographic metadata for a book, keyed by
// ISBN13. It is read-only from this backend's perspective and only ever
// attached to items as best-effort enrichment.
type AntolinEntry struct {
	Author          string    `db:"author" json:"author"`
	Title           string    `db:"title" json:"title"`
	Publisher       string    `db:"publisher" json:"publisher"`
	ISBN10          string    `db:"isbn10" json:"isbn10"`
	ISBN10Formatted string    `db:"isbn10_formatted" json:"isbn10_formatted"`
	ISBN13          string    `db:"isbn13" json:"isbn13"`
	ISBN13Formatted string    `db:"isbn13_formatted" json:"isbn13_formatted"`
	BookID          int64     `db:"book_id" json:"book_id"`
	AvailableSince  time.Time `db:"available_since" json:"available_since"`
	Grade           string    `db:"grade" json:"grade"`
	NumRead         int32     `db:"num_read" json:"num_read"`

	// Link is derived from BookID, never stored.
	Link string `db:"-" json:"link,omitempty"`
}

const antolinBookDetailURL = "https://www.antolin.de/all/bookdetail.jsp?book_id="

// DeriveLink fills in the book detail page URL for this entry.
func (e *AntolinEntry) DeriveLink() {
	e.Link = fmt.Sprintf("%s%d", antolinBookDetailURL, e.BookID)
}
