package http

import (
	"github.com/gorilla/mux"

	"gssb-library-backend/internal/service"
)

// Services groups the circulation facade by dataset for route registration.
type Services struct {
	Borrower service.BorrowerService
	Item     service.ItemService
	Checkout service.CheckoutService
	Report   service.ReportService
	Antolin  service.AntolinService
	Clock    service.Clock
}

// RegisterRoutes wires the circulation API onto the router.
func RegisterRoutes(router *mux.Router, svcs Services) {
	router.Use(RequestLogging)

	borrowers := NewBorrowerHandler(svcs.Borrower)
	items := NewItemHandler(svcs.Item)
	checkouts := NewCheckoutHandler(svcs.Checkout, svcs.Clock)
	reports := NewReportHandler(svcs.Report)
	antolin := NewAntolinHandler(svcs.Antolin)

	api := router.PathPrefix("/api").Subrouter()

	// borrowers
	api.HandleFunc("/borrowers", borrowers.Create).Methods("POST")
	api.HandleFunc("/borrowers", borrowers.List).Methods("GET")
	api.HandleFunc("/borrowers/fees", borrowers.AllFees).Methods("GET")
	api.HandleFunc("/borrowers/{borrowerNumber:[0-9]+}", borrowers.Get).Methods("GET")
	api.HandleFunc("/borrowers/{borrowerNumber:[0-9]+}", borrowers.Update).Methods("PUT")
	api.HandleFunc("/borrowers/{borrowerNumber:[0-9]+}", borrowers.Delete).Methods("DELETE")
	api.HandleFunc("/borrowers/{borrowerNumber:[0-9]+}/payFees", borrowers.PayFees).Methods("POST")
	api.HandleFunc("/borrowers/{borrowerNumber:[0-9]+}/renewAllItems", borrowers.RenewAllItems).Methods("POST")

	// items
	api.HandleFunc("/items", items.Create).Methods("POST")
	api.HandleFunc("/items", items.List).Methods("GET")
	api.HandleFunc("/items/{barcode}", items.Get).Methods("GET")
	api.HandleFunc("/items/{barcode}", items.Update).Methods("PUT")
	api.HandleFunc("/items/{barcode}", items.Delete).Methods("DELETE")
	api.HandleFunc("/items/{barcode}/checkout", items.Checkout).Methods("POST")
	api.HandleFunc("/items/{barcode}/renew", items.Renew).Methods("POST")
	api.HandleFunc("/items/{barcode}/checkin", items.Checkin).Methods("POST")

	// checkouts and history fees
	api.HandleFunc("/checkouts/updateFees", checkouts.UpdateFees).Methods("POST")
	api.HandleFunc("/checkouts/{barcode}/payFee", checkouts.PayCheckoutFee).Methods("POST")
	api.HandleFunc("/history/{id:[0-9]+}/payFee", checkouts.PayHistoryFee).Methods("POST")

	// reports
	api.HandleFunc("/reports/itemUsage", reports.ItemUsage).Methods("GET")

	// antolin
	api.HandleFunc("/antolin/{isbn13}", antolin.Get).Methods("GET")
}
