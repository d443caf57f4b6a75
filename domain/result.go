package domain

// AggregationType classifies an aggregation by its tag filter shape.
type AggregationType string

const (
	AggregationAllNotes  AggregationType = "all-notes"
	AggregationSingleTag AggregationType = "single-tag"
	AggregationMultiTag  AggregationType = "multi-tag"
)

// OutputFrontmatter is the metadata block written at the top of an
// aggregate file. Nullable fields are pointers so that unset filters
// round-trip as YAML nulls.
type OutputFrontmatter struct {
	Tags            []string        `yaml:"tags"`
	Date            string          `yaml:"date"`
	AggregationType AggregationType `yaml:"aggregation_type"`
	SourceTags      *[]string       `yaml:"source_tags"`
	SourceDirectory string          `yaml:"source_directory"`
	FilterPrivacy   []string        `yaml:"filter_privacy"`
	FilterStartDate *string         `yaml:"filter_start_date"`
	FilterEndDate   *string         `yaml:"filter_end_date"`
}

// SkippedFile records one source file excluded from an aggregation and why.
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// AggregationResult summarizes one completed aggregation.
type AggregationResult struct {
	Type          AggregationType   `json:"aggregation_type"`
	OutputPath    string            `json:"output_path"`
	Frontmatter   OutputFrontmatter `json:"-"`
	Body          string            `json:"-"`
	FilesScanned  int               `json:"files_scanned"`
	NotesIncluded int               `json:"notes_included"`
	Skipped       []SkippedFile     `json:"skipped,omitempty"`
}
