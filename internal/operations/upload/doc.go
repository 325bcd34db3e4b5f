// Package upload drives the object upload handshake.
//
// The Uploader measures the data source and picks a strategy by size. Objects
// smaller than DataInlineMaxSize are sent inline: the whole payload is base64
// encoded into the create-upload request, and the upload is then finished with
// the same upload id. Larger objects need a non-inline method, which is not
// implemented; such uploads fail with errors.ErrNotImplemented before any
// remote call is made.
//
// The two remote calls are strictly sequential. A failure at any step ends the
// upload; nothing is retried and a created-but-unfinished upload is left for the
// service to expire.
package upload
