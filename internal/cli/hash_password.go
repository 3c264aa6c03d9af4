package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/terraincognita07/cyclenote/internal/security"
)

const generatedSecretLength = 48

var ErrPasswordsDiffer = errors.New("passwords do not match")

// PasswordReader returns one secret line typed by the operator.
type PasswordReader func(prompt string) (string, error)

// TerminalPasswordReader prompts on out and reads from in without echo.
func TerminalPasswordReader(in *os.File, out io.Writer) PasswordReader {
	return func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)
		line, err := readHiddenLine(in)
		fmt.Fprintln(out)
		return line, err
	}
}

// RunHashPasswordCommand asks for the owner password twice and prints the
// config values needed to run the server.
func RunHashPasswordCommand(out io.Writer, read PasswordReader) error {
	password, err := read("Owner password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	confirmation, err := read("Repeat password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	if password != confirmation {
		return ErrPasswordsDiffer
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return err
	}
	secret, err := security.NewSigningSecret(generatedSecretLength)
	if err != nil {
		return fmt.Errorf("generate secret key: %w", err)
	}

	fmt.Fprintln(out, "auth:")
	fmt.Fprintf(out, "  owner_password_hash: %q\n", hash)
	fmt.Fprintf(out, "  secret_key: %q\n", secret)
	return nil
}
