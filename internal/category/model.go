package category

// Summary is one catalog category with the number of products currently
// listed under it. Categories are not stored on their own; they are derived
// from the live products table.
type Summary struct {
	Name     string `json:"name"`
	Products int64  `json:"products"`
}
