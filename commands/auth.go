package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/net/context"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// authorize returns an HTTP client authorised with either a service account key or the OAuth2 tokens saved by the
// 'authorise' command for an installed application's credentials.
func authorize(credentials string, workdir string, scopes ...string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	if isServiceAccount(b) {
		config, err := google.JWTConfigFromJSON(b, scopes...)
		if err != nil {
			return nil, err
		}

		return config.Client(context.Background()), nil
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, err
	}

	file := tokensFile(credentials, workdir)
	token, err := tokenFromFile(file)
	if err != nil {
		return nil, fmt.Errorf("no saved authorisation for %v - run '%v authorise' first (%w)", credentials, APP, err)
	}

	source := persistent{
		file:   file,
		source: config.TokenSource(context.Background(), token),
		last:   token.AccessToken,
	}

	return oauth2.NewClient(context.Background(), &source), nil
}

func isServiceAccount(credentials []byte) bool {
	key := struct {
		Type string `json:"type"`
	}{}

	if err := json.Unmarshal(credentials, &key); err != nil {
		return false
	}

	return key.Type == "service_account"
}

// tokensFile returns <workdir>/<credentials file name>.tokens
func tokensFile(credentials string, workdir string) string {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	return filepath.Join(workdir, fmt.Sprintf("%s.tokens", name))
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}

	return &token, nil
}

// Saves a token to a file path.
func saveToken(file string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(file), 0770); err != nil {
		return err
	}

	f, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to save OAuth2 token (%w)", err)
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}

// persistent saves refreshed tokens so that the next invocation starts with a valid access token.
type persistent struct {
	file   string
	source oauth2.TokenSource
	last   string
	mu     sync.Mutex
}

func (p *persistent) Token() (*oauth2.Token, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	token, err := p.source.Token()
	if err != nil {
		return nil, err
	}

	if token.AccessToken != p.last {
		if err := saveToken(p.file, token); err != nil {
			warnf("%v", err)
		} else {
			debugf("saved refreshed token to %v", p.file)
		}

		p.last = token.AccessToken
	}

	return token, nil
}
