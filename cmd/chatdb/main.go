// Command chatdb asks a natural-language-to-SQL service questions from the
// terminal, either one at a time or through an interactive chat.
package main

import "github.com/diogo/chatdb/internal/commands"

func main() {
	commands.Execute()
}
