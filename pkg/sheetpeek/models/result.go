package models

// FileResult is the outcome of processing one input path: either Sheet is
// set, or Err explains why the file could not be read.
type FileResult struct {
	Path  string
	Sheet *SheetData
	Err   error
}

// OK reports whether the file was extracted.
func (r FileResult) OK() bool {
	return r.Err == nil
}
