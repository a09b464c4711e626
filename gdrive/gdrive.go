// Package gdrive reads files shared with the service account from Google
// Drive. A Client is bound to a single file - Lookup resolves a filename to
// a file ID, after which the metadata, revision and download operations
// apply to that file.
package gdrive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/joshua-poirier/data-access/config"
	"github.com/joshua-poirier/data-access/dataset"
)

// Scope is the OAuth2 scope required for Drive file access.
const Scope = "https://www.googleapis.com/auth/drive"

// ErrNoFileID is returned by operations invoked before a file has been
// resolved with Lookup or SetFileID.
var ErrNoFileID = errors.New("no file ID set - use Lookup to resolve a filename")

// Metadata is the subset of the Drive file metadata surfaced to callers.
type Metadata struct {
	Name       string
	CreatedAt  time.Time
	ModifiedAt time.Time
	URI        string
}

// Revision identifies a revision of a Drive file.
type Revision struct {
	ID       string
	Modified time.Time
}

// Client reads a Google Drive file. The service account (or OAuth user)
// only sees files that have been explicitly shared with it.
type Client struct {
	service *drive.Service
	fileID  string
	opts    dataset.ReadOptions
}

// NewClient creates a Drive client authenticated with the service account
// from the environment.
func NewClient(ctx context.Context, sa config.ServiceAccount, opts dataset.ReadOptions) (*Client, error) {
	if err := sa.Validate(); err != nil {
		return nil, err
	}

	key, err := sa.JSON()
	if err != nil {
		return nil, err
	}

	credentials, err := google.CredentialsFromJSON(ctx, key, Scope)
	if err != nil {
		return nil, fmt.Errorf("invalid service account credentials (%w)", err)
	}

	service, err := drive.NewService(ctx, option.WithCredentials(credentials))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Drive client (%w)", err)
	}

	return &Client{
		service: service,
		opts:    opts,
	}, nil
}

// NewClientWithHTTP creates a Drive client from an authorised HTTP client
// (the OAuth2 token-cache flow).
func NewClientWithHTTP(ctx context.Context, client *http.Client, opts dataset.ReadOptions) (*Client, error) {
	service, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Drive client (%w)", err)
	}

	return &Client{
		service: service,
		opts:    opts,
	}, nil
}

// SetFileID binds the client to a known file ID, skipping Lookup.
func (c *Client) SetFileID(id string) {
	c.fileID = id
}

// FileID returns the bound file ID, or "" if none has been resolved.
func (c *Client) FileID() string {
	return c.fileID
}

// Lookup resolves a filename to a Drive file ID and binds the client to it.
// Only files shared with the authenticated account are visible - a missing
// file usually means it was never shared with the service account email.
func (c *Client) Lookup(ctx context.Context, filename string) error {
	page := ""
	found := false

	for {
		call := c.service.Files.List().Fields("nextPageToken, files(id, name)").Context(ctx)
		if page != "" {
			call = call.PageToken(page)
		}

		list, err := call.Do()
		if err != nil {
			return err
		}

		found = found || len(list.Files) > 0

		for _, f := range list.Files {
			if f.Name == filename {
				c.fileID = f.Id
				return nil
			}
		}

		if page = list.NextPageToken; page == "" {
			break
		}
	}

	if !found {
		return fmt.Errorf("no files found - ensure access is shared with the service account")
	}

	return fmt.Errorf("could not find file '%s'", filename)
}

// Metadata fetches the name, timestamps and view link for the bound file.
func (c *Client) Metadata(ctx context.Context) (Metadata, error) {
	if c.fileID == "" {
		return Metadata{}, ErrNoFileID
	}

	f, err := c.service.Files.Get(c.fileID).Fields("name, createdTime, modifiedTime, webViewLink").Context(ctx).Do()
	if err != nil {
		return Metadata{}, err
	}

	metadata := Metadata{
		Name: f.Name,
		URI:  f.WebViewLink,
	}

	if f.CreatedTime != "" {
		if metadata.CreatedAt, err = time.Parse(time.RFC3339, f.CreatedTime); err != nil {
			return Metadata{}, err
		}
	}

	if f.ModifiedTime != "" {
		if metadata.ModifiedAt, err = time.Parse(time.RFC3339, f.ModifiedTime); err != nil {
			return Metadata{}, err
		}
	}

	return metadata, nil
}

// LatestRevision walks the revision pages and returns the most recently
// modified revision of the bound file.
func (c *Client) LatestRevision(ctx context.Context) (Revision, error) {
	if c.fileID == "" {
		return Revision{}, ErrNoFileID
	}

	page := ""
	latest := Revision{}

	for {
		call := drive.NewRevisionsService(c.service).List(c.fileID).Fields("nextPageToken, revisions(id, modifiedTime)").Context(ctx)
		if page != "" {
			call = call.PageToken(page)
		}

		revisions, err := call.Do()
		if err != nil {
			return Revision{}, err
		}

		for _, revision := range revisions.Revisions {
			datetime, err := time.Parse("2006-01-02T15:04:05.999Z", revision.ModifiedTime)
			if err != nil {
				return Revision{}, err
			}

			if latest.Modified.Before(datetime) {
				latest.ID = revision.Id
				latest.Modified = datetime
			}
		}

		if page = revisions.NextPageToken; page == "" {
			break
		}
	}

	if latest.Modified.IsZero() {
		return Revision{}, fmt.Errorf("unable to identify latest revision for file ID %s", c.fileID)
	}

	return latest, nil
}

// Download streams the file content to w, rendering a progress bar sized
// from the file metadata.
func (c *Client) Download(ctx context.Context, w io.Writer) error {
	if c.fileID == "" {
		return ErrNoFileID
	}

	f, err := c.service.Files.Get(c.fileID).Fields("name, size").Context(ctx).Do()
	if err != nil {
		return err
	}

	response, err := c.service.Files.Get(c.fileID).Context(ctx).Download()
	if err != nil {
		return err
	}

	defer response.Body.Close()

	bar := progressbar.DefaultBytes(f.Size, f.Name)
	defer bar.Close()

	if _, err := io.Copy(io.MultiWriter(w, bar), response.Body); err != nil {
		return err
	}

	return nil
}

// DownloadToFile downloads the bound file to path. If path is "", the Drive
// filename is used. The download goes to a temporary file which is renamed
// into place on success.
func (c *Client) DownloadToFile(ctx context.Context, path string) (string, error) {
	if c.fileID == "" {
		return "", ErrNoFileID
	}

	if path == "" {
		f, err := c.service.Files.Get(c.fileID).Fields("name").Context(ctx).Do()
		if err != nil {
			return "", err
		}

		path = f.Name
	}

	tmp, err := os.CreateTemp(os.TempDir(), "data-access")
	if err != nil {
		return "", err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := c.Download(ctx, tmp); err != nil {
		return "", err
	}

	tmp.Close()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0770); err != nil {
			return "", err
		}
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}

	return path, nil
}

// Read downloads the bound file into memory and decodes it as a table,
// inferring the format from the Drive filename (CSV if unrecognised).
func (c *Client) Read(ctx context.Context) (*dataset.Table, error) {
	if c.fileID == "" {
		return nil, ErrNoFileID
	}

	f, err := c.service.Files.Get(c.fileID).Fields("name").Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	if err := c.Download(ctx, &b); err != nil {
		return nil, err
	}

	return dataset.Read(&b, dataset.FormatForPath(f.Name), c.opts)
}
