// Package models contains data types and constants for the chatdb client.
package models

// Gateway defaults
const (
	DefaultBaseURL = "http://localhost:5000"
	PathQuery      = "/natural-language"
)

// Conversation text
const (
	AppTitle              = "ChatDB"
	WelcomeMessage        = "Ask me any question in natural language to run SQL queries."
	InputPlaceholder      = "e.g. Show all users over age 30"
	PendingText           = "Generating SQL..."
	DefaultSuccessMessage = "✅ Success"
	ErrorPrefix           = "❌ Error: "
)

// DarkModeKey is the preference key holding the theme flag
const DarkModeKey = "darkMode"

// DefaultHeaders returns the headers sent with every gateway request
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json, text/plain, */*",
		"User-Agent":   "chatdb/" + ClientVersion,
	}
}

// ClientVersion is reported in the User-Agent header
var ClientVersion = "0.1.0"
