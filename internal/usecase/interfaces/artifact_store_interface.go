package interfaces

import "context"

// IArtifactStore abstracts the blob store holding rendered quotation documents
// (e.g. S3). Put returns a retrievable locator for the stored object.
type IArtifactStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (locator string, err error)
}
