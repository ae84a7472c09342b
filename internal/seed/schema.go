package seed

// Entry is a single bookmark in the seed file.
type Entry struct {
	ID          string      `yaml:"id"`
	Title       string      `yaml:"title"`
	URL         string      `yaml:"url"`
	Description string      `yaml:"description"`
	Rating      interface{} `yaml:"rating"`
}

// File is the root structure of the seed YAML:
//
//	bookmarks:
//	  - id: "1"
//	    title: Bookmark One
//	    url: https://example.com
//	    rating: "5"
type File struct {
	Bookmarks []Entry `yaml:"bookmarks"`
}
