package gdrive

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// fakeDrive serves just enough of the Drive v3 surface for the client
// tests: a paginated file listing, file metadata and media downloads.
func fakeDrive(t *testing.T) *drive.Service {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/files", func(w http.ResponseWriter, rq *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if rq.URL.Query().Get("pageToken") == "p2" {
			fmt.Fprintf(w, `{"files": [{"id": "f2", "name": "sales.csv"}]}`)
			return
		}

		fmt.Fprintf(w, `{"files": [{"id": "f1", "name": "other.csv"}], "nextPageToken": "p2"}`)
	})

	mux.HandleFunc("/files/f3", func(w http.ResponseWriter, rq *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id": "f3", "name": "mangled.csv", "createdTime": "2026-01-02T15:04:05.000Z", "modifiedTime": "qwerty"}`)
	})

	mux.HandleFunc("/files/f2/revisions", func(w http.ResponseWriter, rq *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if rq.URL.Query().Get("pageToken") == "r2" {
			fmt.Fprintf(w, `{"revisions": [{"id": "3", "modifiedTime": "2026-03-04T05:06:07.000Z"}]}`)
			return
		}

		fmt.Fprintf(w, `{"revisions": [{"id": "1", "modifiedTime": "2026-01-02T15:04:05.000Z"}, {"id": "2", "modifiedTime": "2026-02-03T04:05:06.000Z"}], "nextPageToken": "r2"}`)
	})

	mux.HandleFunc("/files/f2", func(w http.ResponseWriter, rq *http.Request) {
		if rq.URL.Query().Get("alt") == "media" {
			w.Header().Set("Content-Type", "text/csv")
			fmt.Fprintf(w, "Region,Product\nnorth,widget\n")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id": "f2", "name": "sales.csv", "size": "27", "createdTime": "2026-01-02T15:04:05.000Z", "modifiedTime": "2026-03-04T05:06:07.000Z", "webViewLink": "https://drive.google.com/file/d/f2/view"}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	service, err := drive.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication())
	if err != nil {
		t.Fatalf("Unexpected error creating Drive service (%v)", err)
	}

	return service
}

func TestLookup(t *testing.T) {
	client := Client{service: fakeDrive(t)}

	if err := client.Lookup(context.Background(), "sales.csv"); err != nil {
		t.Fatalf("Unexpected error returned from Lookup (%v)", err)
	}

	if client.FileID() != "f2" {
		t.Errorf("Incorrect file ID - expected:%v, got:%v", "f2", client.FileID())
	}
}

func TestLookupWithUnknownFile(t *testing.T) {
	client := Client{service: fakeDrive(t)}

	if err := client.Lookup(context.Background(), "qwerty.csv"); err == nil {
		t.Fatalf("Expected error return for unknown file, got %v", err)
	}
}

func TestMetadata(t *testing.T) {
	client := Client{service: fakeDrive(t)}
	client.SetFileID("f2")

	metadata, err := client.Metadata(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error returned from Metadata (%v)", err)
	}

	if metadata.Name != "sales.csv" {
		t.Errorf("Incorrect name - expected:%v, got:%v", "sales.csv", metadata.Name)
	}

	if metadata.URI != "https://drive.google.com/file/d/f2/view" {
		t.Errorf("Incorrect URI - expected:%v, got:%v", "https://drive.google.com/file/d/f2/view", metadata.URI)
	}

	if metadata.CreatedAt.IsZero() || metadata.ModifiedAt.IsZero() {
		t.Errorf("Expected timestamps to be parsed, got %v/%v", metadata.CreatedAt, metadata.ModifiedAt)
	}
}

func TestMetadataWithInvalidTimestamp(t *testing.T) {
	client := Client{service: fakeDrive(t)}
	client.SetFileID("f3")

	if _, err := client.Metadata(context.Background()); err == nil {
		t.Fatalf("Expected error return for invalid modified timestamp, got %v", err)
	}
}

func TestMetadataWithoutFileID(t *testing.T) {
	client := Client{service: fakeDrive(t)}

	if _, err := client.Metadata(context.Background()); err != ErrNoFileID {
		t.Fatalf("Expected ErrNoFileID, got %v", err)
	}
}

func TestLatestRevision(t *testing.T) {
	client := Client{service: fakeDrive(t)}
	client.SetFileID("f2")

	revision, err := client.LatestRevision(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error returned from LatestRevision (%v)", err)
	}

	if revision.ID != "3" {
		t.Errorf("Incorrect revision - expected:%v, got:%v", "3", revision.ID)
	}
}

func TestRead(t *testing.T) {
	client := Client{service: fakeDrive(t)}
	client.SetFileID("f2")

	table, err := client.Read(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error returned from Read (%v)", err)
	}

	if len(table.Header) != 2 || table.Header[0] != "Region" {
		t.Errorf("Incorrect header: %v", table.Header)
	}

	if len(table.Records) != 1 || table.Records[0][1] != "widget" {
		t.Errorf("Incorrect records: %v", table.Records)
	}
}
