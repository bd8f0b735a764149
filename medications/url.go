package medications

import "net/url"

// fassSearchBase is the public FASS free-text search endpoint. userType=2
// selects the general-public view of the result page.
const fassSearchBase = "https://www.fass.se/LIF/result"

// SearchURL builds the FASS search URL for a query. The query is encoded
// exactly as typed, without normalization, so the link always reflects the
// user's own words. Pure string construction; FASS is never called.
func SearchURL(query string) string {
	v := url.Values{}
	v.Set("query", query)
	v.Set("userType", "2")
	return fassSearchBase + "?" + v.Encode()
}
