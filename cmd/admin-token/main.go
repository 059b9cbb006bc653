// Command admin-token generates the bcrypt hash the server expects in
// ADMIN_TOKEN_HASH. With no arguments it also generates a fresh random
// token; pass an existing token to hash that instead.
//
//	admin-token            # prints a new token and its hash
//	admin-token <token>    # prints the hash for the given token
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	var token string
	switch len(os.Args) {
	case 1:
		buf := make([]byte, 24)
		if _, err := rand.Read(buf); err != nil {
			fmt.Fprintf(os.Stderr, "failed to generate token: %v\n", err)
			os.Exit(1)
		}
		token = hex.EncodeToString(buf)
		fmt.Printf("token: %s\n", token)
	case 2:
		token = os.Args[1]
	default:
		fmt.Fprintln(os.Stderr, "usage: admin-token [token]")
		os.Exit(2)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash token: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("ADMIN_TOKEN_HASH=%s\n", string(hash))
}
