package urlcheck

// bookingProviders maps a provider's domain to its display name.
// Matching is suffix-based on the hostname, so subdomains like
// mybiz.setmore.com resolve to Setmore.
var bookingProviders = map[string]string{
	"calendly.com":         "Calendly",
	"acuityscheduling.com": "Acuity Scheduling",
	"squareup.com":         "Square Appointments",
	"square.site":          "Square Appointments",
	"booksy.com":           "Booksy",
	"vagaro.com":           "Vagaro",
	"fresha.com":           "Fresha",
	"schedulicity.com":     "Schedulicity",
	"setmore.com":          "Setmore",
	"simplybook.me":        "SimplyBook.me",
	"appointy.com":         "Appointy",
	"picktime.com":         "Picktime",
	"youcanbook.me":        "YouCanBook.me",
	"10to8.com":            "10to8",
	"timetap.com":          "TimeTap",
	"bookafy.com":          "Bookafy",
	"bookings.zoho.com":    "Zoho Bookings",
	"mindbodyonline.com":   "Mindbody",
	"glossgenius.com":      "GlossGenius",
	"janeapp.com":          "Jane",
	"cal.com":              "Cal.com",
	"tidycal.com":          "TidyCal",
	"savvycal.com":         "SavvyCal",
	"doodle.com":           "Doodle",
	"housecallpro.com":     "Housecall Pro",
	"styleseat.com":        "StyleSeat",
}

// socialPlatforms maps a social network's domain to its platform name.
var socialPlatforms = map[string]string{
	"facebook.com":  "facebook",
	"instagram.com": "instagram",
	"twitter.com":   "twitter",
	"x.com":         "twitter",
	"linkedin.com":  "linkedin",
	"youtube.com":   "youtube",
	"tiktok.com":    "tiktok",
	"pinterest.com": "pinterest",
	"yelp.com":      "yelp",
	"threads.net":   "threads",
	"snapchat.com":  "snapchat",
	"nextdoor.com":  "nextdoor",
}

// paymentDomains are payment processors whose links must never be
// surfaced as booking links: the assistant must not hand out a link
// that could collect payment data.
var paymentDomains = []string{
	"stripe.com",
	"paypal.com",
	"venmo.com",
}

// paymentKeywords are substrings that mark a URL as payment-related.
var paymentKeywords = []string{
	"payment",
	"pay.",
	"checkout",
}

// blockedSchemes are URL schemes rejected outright by both validators.
var blockedSchemes = []string{
	"javascript",
	"data",
	"file",
	"vbscript",
	"blob",
}

// Fixed classification confidences. These are static heuristics, not
// contextually computed scores; they are variables so callers with
// different review thresholds can tune them.
var (
	// BookingLinkConfidence is assigned to links matching a known
	// booking provider.
	BookingLinkConfidence = 0.95
	// SocialLinkConfidence is assigned to links matching a known
	// social platform.
	SocialLinkConfidence = 0.9
)
