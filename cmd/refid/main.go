// cmd/refid/main.go
package main

import (
	"refid/internal/app"
	"refid/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
