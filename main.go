/*
Copyright © 2025 Dan Romik
*/
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/danromik/Chatbots/cmd"
)

func main() {
	if len(os.Getenv("DEBUG")) > 0 {
		f, err := os.OpenFile("debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Println("fatal:", err)
			panic(err)
		}
		defer func() {
			_ = f.Close()
		}()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}
	cmd.Execute()
}
