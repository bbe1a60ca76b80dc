package chart

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/openbook-core/openbook/internal/account"
)

// Seed is one account definition in a chart file.
type Seed struct {
	Number        string `yaml:"number"`
	Label         string `yaml:"label"`
	Currency      string `yaml:"currency"`
	Root          bool   `yaml:"root"`
	Settleable    bool   `yaml:"settleable"`
	Reconciliable bool   `yaml:"reconciliable"`
	Forwardable   bool   `yaml:"forwardable"`
}

// Chart is a declarative chart of accounts, typically shipped as a YAML
// file per national plan (plan comptable général, and so on). Currency is
// the default for detail accounts that do not set their own.
type Chart struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
	Accounts []Seed `yaml:"accounts"`
}

// Parse decodes and validates a chart file. Detail accounts inherit the
// chart currency when they carry none of their own.
func Parse(r io.Reader) (*Chart, error) {
	var c Chart

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding chart: %w", err)
	}

	if len(c.Accounts) == 0 {
		return nil, fmt.Errorf("chart %q defines no accounts", c.Name)
	}

	seen := make(map[string]bool, len(c.Accounts))

	for i := range c.Accounts {
		s := &c.Accounts[i]

		if !account.ValidNumber(s.Number) {
			return nil, fmt.Errorf("chart %q: invalid account number %q", c.Name, s.Number)
		}

		if seen[s.Number] {
			return nil, fmt.Errorf("chart %q: duplicate account number %q", c.Name, s.Number)
		}

		seen[s.Number] = true

		if s.Label == "" {
			return nil, fmt.Errorf("chart %q: account %s has no label", c.Name, s.Number)
		}

		if !s.Root && s.Currency == "" {
			s.Currency = c.Currency
		}
	}

	return &c, nil
}

// Account builds the account a seed describes.
func (s Seed) Account() *account.Account {
	return &account.Account{
		Number:        s.Number,
		Label:         s.Label,
		Currency:      s.Currency,
		Root:          s.Root,
		Settleable:    s.Settleable,
		Reconciliable: s.Reconciliable,
		Forwardable:   s.Forwardable,
	}
}
