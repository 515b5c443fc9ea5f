package tools

/*
Appends lines to a file
*/

import (
	"os"
)

func WriteLineToFile(fileName string, line string) error {
	// Open or create the file for writing (append if it exists)
	f, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(line + "\n")
	return err
}
