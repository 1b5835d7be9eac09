package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// rupiahInput returns a huh.Input for a non-negative whole-rupiah amount.
// Dots and spaces are accepted as grouping and stripped on parse.
func rupiahInput(title, placeholder string, value *string) *huh.Input {
	if placeholder == "" {
		placeholder = "5000000"
	}
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateRupiah)
}

// intInput returns a huh.Input for a positive integer field.
func intInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validatePositiveInt)
}

func validateRupiah(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil // blank means zero
	}
	if _, err := parseRupiah(s); err != nil {
		return errors.New("masukkan angka rupiah, mis. 5000000")
	}
	return nil
}

func validatePositiveRupiah(s string) error {
	v, err := parseRupiah(s)
	if err != nil || v <= 0 {
		return errors.New("masukkan jumlah rupiah lebih dari nol")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return errors.New("masukkan angka bulat positif")
	}
	return nil
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("wajib diisi")
	}
	return nil
}

// parseRupiah reads a rupiah amount, tolerating "." and " " grouping.
// A blank string is zero.
func parseRupiah(s string) (int64, error) {
	cleaned := strings.NewReplacer(".", "", " ", "", "Rp", "", "rp", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return 0, nil
	}
	return strconv.ParseInt(cleaned, 10, 64)
}

// parseRupiahOr returns the parsed amount or the fallback on a blank or
// malformed value. Used when the field was already validated.
func parseRupiahOr(s string, fallback int64) int64 {
	v, err := parseRupiah(s)
	if err != nil {
		return fallback
	}
	return v
}

// parseFloatOr returns the parsed number or the fallback. Accepts a comma
// decimal separator.
func parseFloatOr(s string, fallback float64) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return fallback
	}
	return v
}

// parseIntOr returns the parsed integer or the fallback.
func parseIntOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}
