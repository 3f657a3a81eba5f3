package models

// GatewayResponse is returned by the gateway resolution endpoints.
type GatewayResponse struct {
	// Name is the canister name when the gateway was resolved by name.
	Name string `json:"name,omitempty"`

	// CanisterID is the id the URL was resolved for.
	CanisterID string `json:"canisterId"`

	// URL is the HTTP gateway URL of the canister.
	URL string `json:"url"`
}

// BuildInfoResponse is the JSON form of [AppBuildInfo].
type BuildInfoResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
