package abiquoapi

// Link is the {href, rel, title, type} hyperlink every Abiquo resource
// carries in its links array.
type Link struct {
	Href  string `json:"href,omitempty"`
	Rel   string `json:"rel,omitempty"`
	Title string `json:"title,omitempty"`
	Type  string `json:"type,omitempty"`
}

// PublicIPType is the media type of a public IP link on a virtual machine.
const PublicIPType = "application/vnd.abiquo.publicip+json"

// Resource is a raw Abiquo API resource. The API is schemaless from the
// client's point of view - every resource is a JSON object with a links
// array - so resources are kept as generic maps with typed accessors.
type Resource map[string]interface{}

// Links returns the resource's links array. Resources without links return
// an empty slice.
func (r Resource) Links() []Link {
	raw, ok := r["links"].([]interface{})
	if !ok {
		return nil
	}
	links := make([]Link, 0, len(raw))
	for _, l := range raw {
		m, ok := l.(map[string]interface{})
		if !ok {
			continue
		}
		links = append(links, Link{
			Href:  str(m["href"]),
			Rel:   str(m["rel"]),
			Title: str(m["title"]),
			Type:  str(m["type"]),
		})
	}
	return links
}

// Link returns the first link with the given rel.
func (r Resource) Link(rel string) (Link, bool) {
	for _, l := range r.Links() {
		if l.Rel == rel {
			return l, true
		}
	}
	return Link{}, false
}

// Str returns the named attribute as a string. Missing or non-string
// attributes return an empty string.
func (r Resource) Str(key string) string {
	return str(r[key])
}

// State returns the virtual machine state attribute.
func (r Resource) State() string {
	return r.Str("state")
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}

// collection is the {"collection": [...], "links": [...]} envelope Abiquo
// wraps every list response in.
type collection struct {
	Links      []Link     `json:"links,omitempty"`
	Collection []Resource `json:"collection"`
}

func (c collection) next() (Link, bool) {
	for _, l := range c.Links {
		if l.Rel == "next" {
			return l, true
		}
	}
	return Link{}, false
}
