package chrome

// Cookie is a single row extracted from Chrome's cookie store.
type Cookie struct {
	Domain string // host_key; leading '.' means valid for subdomains
	Name   string
	Value  string
	Path   string
	Secure bool

	// ExpiresUTC is Chrome's internal timestamp: microseconds since
	// 1601-01-01. Zero means a session cookie with no fixed expiry.
	ExpiresUTC int64
}

// DomainCount pairs a cookie host with the number of cookies stored for it.
type DomainCount struct {
	Domain string
	Count  int64
}
