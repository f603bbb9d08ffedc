package aoc

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Inputs loads puzzle inputs, caching them on disk as {Dir}/{year}/{day}.input
// and downloading missing ones with the session cookie.
type Inputs struct {
	Dir     string
	BaseURL string // defaults to https://adventofcode.com
	Client  *http.Client
	// Session returns the adventofcode.com session cookie. The default
	// reads $HOME/keys/aoc.session.
	Session func() (string, error)
}

func (in *Inputs) path(year, day int) string {
	return filepath.Join(in.Dir, fmt.Sprint(year), fmt.Sprintf("%d.input", day))
}

// Load returns the input for year and day.
func (in *Inputs) Load(year, day int) ([]byte, error) {
	name := in.path(year, day)
	if b, err := os.ReadFile(name); err == nil {
		return b, nil
	}
	b, err := in.fetch(year, day)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(name, b, 0644); err != nil {
		return nil, err
	}
	return b, nil
}

func (in *Inputs) fetch(year, day int) ([]byte, error) {
	session := in.Session
	if session == nil {
		session = homeSession
	}
	cookie, err := session()
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	base := in.BaseURL
	if base == "" {
		base = "https://adventofcode.com"
	}
	url := fmt.Sprintf("%s/%d/day/%d/input", base, year, day)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: cookie})
	client := in.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}

func homeSession() (string, error) {
	b, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"))
	return strings.TrimSpace(string(b)), err
}
