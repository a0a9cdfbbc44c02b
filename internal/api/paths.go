package api

// GJSON paths for extracting values from gateway responses.
const (
	PathSQL     = "sql"
	PathResult  = "result"
	PathMessage = "message"
	PathError   = "error"
)
