package models

// SiteSetting is one public site configuration entry, fetched from the
// upstream and cached with an explicit refresh lifecycle rather than held in
// an ambient module-level cache.
type SiteSetting struct {
	Key   string `json:"setting_key"`
	Value string `json:"setting_value"`
	Type  string `json:"setting_type"`
}

// StaticPage is a legal/informational content page.
type StaticPage struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Sections []string `json:"sections"`
}
