package model

type AnalyzeRequestBody struct {
	PitchClasses []int `json:"pitch_classes"`
}

type CompareRequestBody struct {
	Set1 []int `json:"set1"`
	Set2 []int `json:"set2"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

type CatalogEntry struct {
	ForteNumber    string `json:"forte_number"`
	PrimeForm      []int  `json:"prime_form"`
	IntervalVector [6]int `json:"interval_vector"`
}
