package export

// Dataset is the tabular form of a set of survey responses: one column per
// question plus the respondent columns, one row per submission.
type Dataset struct {
	Headers []string
	Rows    [][]string
}
