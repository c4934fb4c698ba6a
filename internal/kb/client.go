package kb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// DefaultKnowledgeBaseID identifies the hosted interview-prep knowledge
// base documents are attached to.
const DefaultKnowledgeBaseID = "69a27f4f00c2d274880f6c7b"

// Document is one file in the knowledge base. File names are the
// identity the service keys deletes on.
type Document struct {
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	Status   string `json:"status"`
}

// Client talks to the hosted knowledge-base service.
type Client struct {
	endpoint string
	apiKey   string
	kbID     string
	http     *http.Client
}

// NewClient creates a knowledge-base client. An empty kbID falls back
// to DefaultKnowledgeBaseID.
func NewClient(endpoint, apiKey, kbID string) *Client {
	if kbID == "" {
		kbID = DefaultKnowledgeBaseID
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		kbID:     kbID,
		http:     &http.Client{},
	}
}

// NewClientFromEnv builds a client from CODEPREP_KB_* env vars. It
// returns nil when no endpoint is configured; knowledge-base features
// are then unavailable.
func NewClientFromEnv() *Client {
	endpoint := os.Getenv("CODEPREP_KB_ENDPOINT")
	if endpoint == "" {
		return nil
	}
	return NewClient(endpoint, os.Getenv("CODEPREP_KB_API_KEY"), os.Getenv("CODEPREP_KB_ID"))
}

// KnowledgeBaseID returns the knowledge base this client targets.
func (c *Client) KnowledgeBaseID() string {
	return c.kbID
}

// List returns the documents currently in the knowledge base.
func (c *Client) List(ctx context.Context) ([]Document, error) {
	url := fmt.Sprintf("%s/knowledge-bases/%s/documents", c.endpoint, c.kbID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, httpError("list documents", resp)
	}

	var out struct {
		Documents []Document `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("list documents: decode response: %w", err)
	}
	return out.Documents, nil
}

// Upload attaches a local file to the knowledge base. The service
// ingests asynchronously; the returned document's Status reports the
// ingestion state at upload time.
func (c *Client) Upload(ctx context.Context, path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("upload %s: %w", filepath.Base(path), err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/knowledge-bases/%s/documents", c.endpoint, c.kbID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", filepath.Base(path), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, httpError("upload document", resp)
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("upload %s: decode response: %w", filepath.Base(path), err)
	}
	return &doc, nil
}

// Delete removes documents from the knowledge base by file name.
func (c *Client) Delete(ctx context.Context, fileNames []string) error {
	body, err := json.Marshal(struct {
		FileNames []string `json:"file_names"`
	}{FileNames: fileNames})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/knowledge-bases/%s/documents", c.endpoint, c.kbID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete documents: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return httpError("delete documents", resp)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

func httpError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		return fmt.Errorf("%s: %s", op, payload.Error)
	}
	return fmt.Errorf("%s: HTTP %d", op, resp.StatusCode)
}
