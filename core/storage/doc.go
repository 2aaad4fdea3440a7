// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface so both AWS S3 and
// self-hosted MinIO instances can hold the item metadata documents the
// ledger references. The ledger itself only keeps an opaque reference per
// item; the documents live here.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions in unit tests (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: verify or create the metadata bucket.
//   - PutObject: store a metadata document.
//   - GetObject: retrieve a document as a stream.
//   - RemoveObject: drop a document when its item is burned.
package storage
