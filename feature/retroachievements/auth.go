package retroachievements

import "net/http"

// QueryAuth signs requests with the web API credentials passed as the z
// (username) and y (API key) query parameters.
type QueryAuth struct {
	Username string
	APIKey   string
}

// Apply sets the credential parameters on req.
func (a QueryAuth) Apply(req *http.Request) {
	if req.URL == nil {
		return
	}
	query := req.URL.Query()
	query.Set("z", a.Username)
	query.Set("y", a.APIKey)
	req.URL.RawQuery = query.Encode()
}
