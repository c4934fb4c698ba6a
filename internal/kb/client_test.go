package kb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestListDocuments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/knowledge-bases/"+DefaultKnowledgeBaseID+"/documents" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer key-1" {
			t.Errorf("auth = %q", r.Header.Get("Authorization"))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"documents": []map[string]any{
				{"file_name": "arrays.md", "file_type": "md", "status": "active"},
				{"file_name": "graphs.pdf", "file_type": "pdf", "status": "processing"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key-1", "")
	docs, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d documents", len(docs))
	}
	if docs[0].FileName != "arrays.md" || docs[1].Status != "processing" {
		t.Errorf("docs = %+v", docs)
	}
}

func TestUploadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(path, []byte("# Two pointers\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		if hdr.Filename != "notes.md" {
			t.Errorf("filename = %q", hdr.Filename)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Document{
			FileName: "notes.md", FileType: "md", Status: "processing",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "kb-custom")
	doc, err := c.Upload(context.Background(), path)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if doc.FileName != "notes.md" || doc.Status != "processing" {
		t.Errorf("doc = %+v", doc)
	}
}

func TestUploadMissingFile(t *testing.T) {
	c := NewClient("http://localhost:0", "", "")
	if _, err := c.Upload(context.Background(), "/nonexistent/file.md"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDeleteDocuments(t *testing.T) {
	var gotPath string
	var gotBody struct {
		FileNames []string `json:"file_names"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "kb-1")
	if err := c.Delete(context.Background(), []string{"arrays.md", "graphs.pdf"}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if gotPath != "/knowledge-bases/kb-1/documents" {
		t.Errorf("path = %s", gotPath)
	}
	if len(gotBody.FileNames) != 2 || gotBody.FileNames[0] != "arrays.md" {
		t.Errorf("file_names = %v", gotBody.FileNames)
	}
}

func TestServerErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "knowledge base is read-only"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "")
	err := c.Delete(context.Background(), []string{"arrays.md"})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "delete documents: knowledge base is read-only" {
		t.Errorf("error = %q", got)
	}
}

func TestNewClientFromEnv(t *testing.T) {
	t.Setenv("CODEPREP_KB_ENDPOINT", "")
	if c := NewClientFromEnv(); c != nil {
		t.Error("expected nil client without endpoint")
	}

	t.Setenv("CODEPREP_KB_ENDPOINT", "https://api.example.com/")
	t.Setenv("CODEPREP_KB_ID", "kb-override")
	c := NewClientFromEnv()
	if c == nil {
		t.Fatal("expected client")
	}
	if c.KnowledgeBaseID() != "kb-override" {
		t.Errorf("kb id = %q", c.KnowledgeBaseID())
	}
	if c.endpoint != "https://api.example.com" {
		t.Errorf("endpoint = %q", c.endpoint)
	}
}
