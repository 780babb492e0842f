package entity

// NavItem is one entry of a portal's navigation menu.
type NavItem struct {
	Name string `json:"name"`
	Href string `json:"href"`
}
