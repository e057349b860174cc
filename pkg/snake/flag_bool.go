// Package snake holds the interactive terminal prompts used by the CLI.
package snake

import (
	"io"
	"strconv"

	"github.com/manifoldco/promptui"
)

// Confirm asks a yes/no question. Anything but an explicit yes is a no.
func Confirm(label string, in io.Reader, out io.Writer) (bool, error) {
	validate := func(input string) error {
		if input == "" {
			return nil
		}
		_, err := ParseBool(input)
		return err
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} [y/N] : ",
		Valid:   "{{ . | green }} [y/N] : ",
		Invalid: "{{ . | red }} [y/N] : ",
		Success: "{{ . | bold }} : ",
	}

	prompt := promptui.Prompt{
		Label:     label,
		Templates: templates,
		Validate:  validate,
		Stdin:     io.NopCloser(in),
		Stdout:    NopCloser(out),
	}

	result, err := prompt.Run()
	if err != nil {
		if err == promptui.ErrAbort || err == promptui.ErrInterrupt {
			return false, nil
		}
		return false, err
	}
	if result == "" {
		return false, nil
	}
	yes, _ := ParseBool(result)
	return yes, nil
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser adapts w to the io.WriteCloser promptui expects.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}
