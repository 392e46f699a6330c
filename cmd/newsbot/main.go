package main

import (
	"os"

	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/cmd/newsbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
