package catalog

// Catalog is the legacy nested category -> subcategory -> post tree.
type Catalog struct {
	Categories []CategoryNode `json:"categories"`
}

type CategoryNode struct {
	ID            string            `json:"id"`
	Name          string            `json:"name,omitempty"`
	Description   string            `json:"description,omitempty"`
	Icon          string            `json:"icon,omitempty"`
	Subcategories []SubcategoryNode `json:"subcategories"`
}

type SubcategoryNode struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Posts []Post `json:"posts"`
}

// Flatten walks the tree in category, subcategory, post order. Posts that
// carry their own category or subcategory keep them.
func (c Catalog) Flatten() []Post {
	var posts []Post
	for _, cat := range c.Categories {
		for _, sub := range cat.Subcategories {
			for _, p := range sub.Posts {
				if p.Category == "" {
					p.Category = cat.ID
				}
				if p.Subcategory == "" {
					p.Subcategory = sub.ID
				}
				posts = append(posts, p)
			}
		}
	}
	return posts
}

// Document is a decoded catalog file in either shape.
type Document struct {
	Nested *Catalog
	Flat   []Post
}

func (d Document) Posts() []Post {
	if d.Nested != nil {
		return d.Nested.Flatten()
	}
	return d.Flat
}
