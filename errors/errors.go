package errors

import "fmt"

var (
	ErrEmptyConcern    = fmt.Errorf("concern text is empty")
	ErrContentTooLong  = fmt.Errorf("concern text exceeds the configured limit")
	ErrEmptyDictionary = fmt.Errorf("no forbidden phrases have been found")
)
