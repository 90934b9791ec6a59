// Command hashsecret prints the bcrypt hash of a client secret so it can
// be placed in API_CLIENT_SECRET_HASH when provisioning an API client.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iliyamo/restaurant-table-reservation/internal/utils"
)

func main() {
	cost := flag.Int("cost", 12, "bcrypt cost factor")
	flag.Parse()

	secret := flag.Arg(0)
	if secret == "" {
		fmt.Fprintln(os.Stderr, "usage: hashsecret [-cost N] <secret>")
		os.Exit(2)
	}

	hash, err := utils.HashClientSecret(secret, *cost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash failed:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
