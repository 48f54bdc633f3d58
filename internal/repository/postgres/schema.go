package postgres

import "gssb-library-backend/internal/entity"

// Table bindings for the circulation schema. Contains columns are the ones
// searched by substring from the UI; antolin_sticker arrives as a string
// "true"/"false" from query parameters and is declared boolean.

var borrowerSchema = entity.Schema{
	Name:  "borrower",
	Table: "borrowers",
	Columns: []entity.Column{
		{Name: "borrowernumber"},
		{Name: "cardnumber"},
		{Name: "firstname", Contains: true},
		{Name: "contactname", Contains: true},
		{Name: "surname", Contains: true},
		{Name: "streetaddress"},
		{Name: "city"},
		{Name: "zipcode"},
		{Name: "phone"},
		{Name: "emailaddress", Contains: true},
		{Name: "emailaddress_2"},
		{Name: "state"},
	},
	NaturalKey: "borrowernumber",
}

var itemSchema = entity.Schema{
	Name:  "item",
	Table: "items",
	Columns: []entity.Column{
		{Name: "barcode"},
		{Name: "title", Contains: true},
		{Name: "author", Contains: true},
		{Name: "description"},
		{Name: "subject"},
		{Name: "publicationyear"},
		{Name: "publishercode"},
		{Name: "age"},
		{Name: "media"},
		{Name: "seriestitle", Contains: true},
		{Name: "classification"},
		{Name: "itemnotes"},
		{Name: "replacementprice_cents"},
		{Name: "state"},
		{Name: "antolin_sticker", Boolean: true},
		{Name: "isbn10"},
		{Name: "isbn13"},
	},
	NaturalKey: "barcode",
}

var checkoutColumns = []entity.Column{
	{Name: "id"},
	{Name: "borrowernumber"},
	{Name: "barcode"},
	{Name: "checkout_date"},
	{Name: "date_due"},
	{Name: "returndate"},
	{Name: "renewals"},
	{Name: "fine_due_cents"},
	{Name: "fine_paid_cents"},
}

// The natural key of an active checkout is the item barcode: an item can be
// on loan at most once at any time.
var checkoutSchema = entity.Schema{
	Name:       "checkout",
	Table:      "out",
	Columns:    checkoutColumns,
	NaturalKey: "barcode",
}

var historySchema = entity.Schema{
	Name:       "history",
	Table:      "issue_history",
	Columns:    checkoutColumns,
	NaturalKey: "id",
}

var antolinSchema = entity.Schema{
	Name:  "antolin",
	Table: "antolin",
	Columns: []entity.Column{
		{Name: "author"},
		{Name: "title"},
		{Name: "publisher"},
		{Name: "isbn10"},
		{Name: "isbn10_formatted"},
		{Name: "isbn13"},
		{Name: "isbn13_formatted"},
		{Name: "book_id"},
		{Name: "available_since"},
		{Name: "grade"},
		{Name: "num_read"},
	},
	NaturalKey: "isbn13",
}
