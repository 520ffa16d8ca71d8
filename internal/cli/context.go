// Package cli holds the terminal client's commands.
package cli

import "github.com/lovedays/internal/client"

// Context carries shared dependencies into command Run methods.
type Context struct {
	API *client.Client
}
