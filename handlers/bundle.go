package handlers

// HandlerBundle aggregates the HTTP handlers so route registration can
// receive them as one unit.
type HandlerBundle struct {
	Booking   *BookingHandler
	Package   *PackageHandler
	Room      *RoomHandler
	Taxi      *TaxiHandler
	Review    *ReviewHandler
	Gallery   *GalleryHandler
	Blog      *BlogHandler
	Contact   *ContactHandler
	Dashboard *DashboardHandler
	Admin     *AdminHandler
}
