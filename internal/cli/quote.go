package cli

import (
	"context"
	"fmt"
)

type QuoteCmd struct{}

func (c *QuoteCmd) Run(ctx *Context) error {
	quote, err := ctx.API.Quote(context.Background())
	if err != nil {
		return err
	}
	fmt.Println(quote)
	return nil
}
