package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"
	"golang.org/x/crypto/bcrypt"
)

var hashKeyCmd = cli.Command{
	Name:      "hash-key",
	Usage:     "print the bcrypt hash of an API key for API_KEY_HASH",
	ArgsUsage: "<api-key>",
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "cost",
			Value: bcrypt.DefaultCost,
			Usage: "bcrypt cost factor",
		},
	},
	Action: func(c *cli.Context) error {
		key := c.Args().First()
		if key == "" {
			return errors.New("an API key argument is required")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(key), c.Int("cost"))
		if err != nil {
			return fmt.Errorf("hashing API key: %w", err)
		}
		fmt.Fprintln(c.App.Writer, string(hash))
		return nil
	},
}
