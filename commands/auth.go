package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// authorize returns an HTTP client authorised for the given scope, using
// the token cached in the workdir. If no cached token exists the OAuth2
// authorization-code flow is run interactively and the token is saved.
func authorize(credentials, scope, workdir string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	cfg, err := google.ConfigFromJSON(b, scope)
	if err != nil {
		return nil, err
	}

	tokens := tokensPath(credentials, scope, workdir)

	token, err := tokenFromFile(tokens)
	if err != nil {
		if token, err = tokenFromWeb(cfg); err != nil {
			return nil, err
		}

		if err := saveToken(tokens, token); err != nil {
			return nil, err
		}
	}

	return cfg.Client(context.Background(), token), nil
}

// tokenFromWeb requests a token interactively - the user opens the
// authorization URL in a browser and pastes the code back.
func tokenFromWeb(cfg *oauth2.Config) (*oauth2.Token, error) {
	authURL := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the authorization code:\n%v\n", authURL)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("unable to read authorization code (%w)", err)
	}

	token, err := cfg.Exchange(context.Background(), code)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web (%w)", err)
	}

	return token, nil
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, err
	}

	return token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("unable to cache oauth token (%w)", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token (%w)", err)
	}

	defer f.Close()

	infof("Saving credential file to %s", path)

	return json.NewEncoder(f).Encode(token)
}
