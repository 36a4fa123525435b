package model

// ExampleMetadata is the recording info stored alongside an example in the
// metadata table, keyed by example name.
type ExampleMetadata struct {
	Composer string `json:"composer"`
	Piece    string `json:"piece"`
	Year     uint   `json:"year,omitempty"`
}
