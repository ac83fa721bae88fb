package fetch

import "fmt"

// NetworkError means the request never produced a usable HTTP response:
// DNS failure, refused connection, timeout. The caller should suggest
// checking connectivity and fall back to cached data.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("no internet connection: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DataFetchError means the server answered but the data is unusable: a bad
// status code, an undecodable body, or a selection that resolves to no
// timetable. Retrying without fixing the data or the selection will not help.
type DataFetchError struct {
	Doc string
	Err error
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Doc, e.Err)
}

func (e *DataFetchError) Unwrap() error { return e.Err }
