package main

import (
	"context"

	"github.com/homier/hashtab/cmd/bookindex/app"
)

func main() {
	app.MustExecute(context.Background())
}
