package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

var hashKeyCost int

var hashKeyCmd = &cobra.Command{
	Use:   "hash-key",
	Short: "Hash an API key for security.api_key_hash",
	Long: `Reads an API key without echoing it and prints its bcrypt hash.
When stdin is not a terminal the key is read from the first input line.`,
	RunE: runHashKey,
}

func init() {
	hashKeyCmd.Flags().IntVar(&hashKeyCost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	rootCmd.AddCommand(hashKeyCmd)
}

func runHashKey(cmd *cobra.Command, args []string) error {
	var key string
	var err error

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		key, err = promptKey(fd, cmd.ErrOrStderr())
	} else {
		key, err = readKeyLine(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	hash, err := hashKey(key, hashKeyCost)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}

func promptKey(fd int, prompt io.Writer) (string, error) {
	fmt.Fprint(prompt, "Enter API key:   ")
	key, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("read key: %w", err)
	}

	fmt.Fprint(prompt, "Confirm API key: ")
	confirm, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("read key confirmation: %w", err)
	}

	if string(key) != string(confirm) {
		return "", errors.New("keys do not match")
	}
	return string(key), nil
}

func readKeyLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read key: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func hashKey(key string, cost int) (string, error) {
	if key == "" {
		return "", errors.New("API key cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		return "", fmt.Errorf("hash key: %w", err)
	}
	return string(hash), nil
}
