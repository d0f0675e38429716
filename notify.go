package pixl

// Notifier is the boundary the drawing core signals through after a data
// mutation or cursor change. The core never touches a display surface
// directly, it only reports that one is stale.
type Notifier interface {
	// DataChanged signals that the layer set or frame structure changed.
	// Subscribers should rebuild any layer or timeline listing.
	DataChanged()

	// RenderRequested signals that the displayed composite is stale.
	// Subscribers should recomposite the document and present the result.
	RenderRequested()
}

// NopNotifier discards all notifications. It is the fallback used when a
// document or engine is constructed without a subscriber, e.g. in tests
// or headless sessions.
var NopNotifier Notifier = nopNotifier{}

type nopNotifier struct{}

func (nopNotifier) DataChanged()     {}
func (nopNotifier) RenderRequested() {}
