package report

// Report is a flattened, human-oriented view of a parsed feed
type Report struct {
	Format      string   `yaml:"format,omitempty" json:"format,omitempty"`
	ID          string   `yaml:"id,omitempty" json:"id,omitempty"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Updated     string   `yaml:"updated,omitempty" json:"updated,omitempty"`
	Language    string   `yaml:"language,omitempty" json:"language,omitempty"`
	Generator   string   `yaml:"generator,omitempty" json:"generator,omitempty"`
	Links       []string `yaml:"links,omitempty" json:"links,omitempty"`
	Authors     []string `yaml:"authors,omitempty" json:"authors,omitempty"`
	Categories  []string `yaml:"categories,omitempty" json:"categories,omitempty"`
	EntryCount  int      `yaml:"entry_count" json:"entry_count"`
	Entries     []Entry  `yaml:"entries,omitempty" json:"entries,omitempty"`
}

// Entry summarizes a single feed entry
type Entry struct {
	ID         string   `yaml:"id,omitempty" json:"id,omitempty"`
	Title      string   `yaml:"title" json:"title"`
	Updated    string   `yaml:"updated" json:"updated"`
	Published  string   `yaml:"published,omitempty" json:"published,omitempty"`
	Link       string   `yaml:"link,omitempty" json:"link,omitempty"`
	Authors    []string `yaml:"authors,omitempty" json:"authors,omitempty"`
	Categories []string `yaml:"categories,omitempty" json:"categories,omitempty"`
	HasSummary bool     `yaml:"has_summary" json:"has_summary"`
	HasContent bool     `yaml:"has_content" json:"has_content"`
}
