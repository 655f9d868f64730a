package cmd

import (
	"fmt"
	"strings"
)

// confirm asks the user a yes/no question on stdout and reads the
// answer from stdin. cancelled is printed when the user declines.
// A true force value skips the prompt entirely.
func confirm(question, cancelled string, force ...bool) bool {
	if len(force) != 0 && force[0] {
		return true
	}
	fmt.Printf("%s (yes/no): ", question)
	var i string
	_, _ = fmt.Scanf("%s", &i)
	i = strings.ToLower(i)
	switch i {
	case "yes", "y", "true", "1":
		return true
	default:
		fmt.Println(cancelled)
		return false
	}
}
