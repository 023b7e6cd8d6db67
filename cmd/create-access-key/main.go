// CLI tool to create an API access key and its bcrypt hash. Put the hash in
// ACCESS_KEY_HASH for the server and give the key to the client.
// Usage: go run ./cmd/create-access-key (leave the prompt blank to generate a key)
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// newAccessKey returns key (or a fresh random key when blank) and its hash.
func newAccessKey(key string) (string, []byte, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		key = uuid.New().String()
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}
	return key, hash, nil
}

func main() {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Access key (blank to generate): ")
	input, _ := reader.ReadString('\n')

	key, hash, err := newAccessKey(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing access key: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nAccess key created successfully!\n")
	fmt.Printf("  Access Key:  %s\n", key)
	fmt.Printf("  .env line:   ACCESS_KEY_HASH=%s\n", hash)
}
