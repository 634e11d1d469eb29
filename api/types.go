package api

// Pretty enables objects to provide rich text formatting for terminal output.
type Pretty interface {
	Pretty() Text
}
