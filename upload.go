package pamfax

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// AddFile uploads file data into the current fax job.
func (c *client) AddFile(ctx context.Context, filename string, data []byte) (*FaxContainerFileResponse, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFileData
	}

	return c.AddFileReader(ctx, filename, bytes.NewReader(data))
}

// AddFileReader streams a file into the current fax job as a multipart upload.
// The part's content type is sniffed from the leading bytes.
func (c *client) AddFileReader(ctx context.Context, filename string, r io.Reader) (*FaxContainerFileResponse, error) {
	if filename == "" {
		return nil, ErrEmptyFileName
	}

	if r == nil {
		return nil, ErrNilReader
	}

	mtype, body, err := detectContentType(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", OperationAddFile, err)
	}

	name := filepath.Base(filename)

	req, err := c.newRequest(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", OperationAddFile, err)
	}

	resp, err := req.
		SetQueryParam("filename", name).
		SetMultipartFormData(map[string]string{"filename": name}).
		SetMultipartField("file", name, mtype, body).
		Post(EndpointAddFile)

	var result FaxContainerFileResponse
	if err := c.decodeJSON(ctx, OperationAddFile, EndpointAddFile, resp, err, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// detectContentType sniffs the MIME type and returns a reader that replays the sniffed bytes.
func detectContentType(r io.Reader) (string, io.Reader, error) {
	header := make([]byte, 3072)
	n, err := io.ReadFull(r, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", nil, fmt.Errorf("read file header: %w", err)
	}
	header = header[:n]

	if n == 0 {
		return "", nil, ErrEmptyFileData
	}

	return mimetype.Detect(header).String(), io.MultiReader(bytes.NewReader(header), r), nil
}
