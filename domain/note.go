package domain

// Note is a single markdown note read from a vault directory.
// Notes are never mutated after parsing.
type Note struct {
	Path         string   `json:"path"`
	FilenameDate string   `json:"filename_date"`
	Tags         []string `json:"tags"`
	Privacy      string   `json:"privacy,omitempty"`
	Body         string   `json:"-"`
}
