package model

// DefaultRiskKeywords is the fixed catalog of risk-indicator phrases.
// Entries are lowercase because detection runs against lowercased page
// text. Order matters: detected keywords are reported in catalog order.
// The slice is read-only shared state; callers must not mutate it.
var DefaultRiskKeywords = []string{
	// counterfeit / replica signals
	"first copy", "replica", "copy product", "grade 1 copy", "mirror copy",
	"super clone", "aaa quality", "top quality copy", "premium replica",
	"1:1 replica", "exact copy", "look alike", "imported replica",
	"original brand look", "branded lookalike", "inspired by",
	"designer inspired", "brand style", "just like", "same as original",

	// pricing / urgency signals
	"cheap branded", "lowest price", "unbelievable price", "steal deal",
	"flash sale", "buy 1 get 1", "limited stock", "exclusive deal",
	"clearance sale", "wholesale price", "direct factory rate",

	// no-recourse signals
	"no return", "no warranty", "non-refundable", "cash on delivery only",
	"dm for price", "whatsapp to order", "no customer support",
	"delivered in plain packaging", "avoid customs",

	// brand-specific counterfeits
	"nike copy", "adidas first copy", "apple replica", "gucci inspired",
	"rolex super clone", "louis vuitton first copy", "samsung duplicate",
}
