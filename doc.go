// Package object provides a client for uploading objects to an object service.
//
// The client measures each data source and picks an upload method by size.
// Objects smaller than 8 KiB are uploaded inline: the whole payload is base64
// encoded into the create-upload request and the upload is then finished with
// the same upload id. Larger objects need a non-inline method, which is not
// implemented yet; such uploads fail with errors.ErrNotImplemented without
// contacting the service.
//
// Authentication belongs to the service handle. Either pass a pre-authenticated
// *http.Client with WithHTTPClient, or supply your own objectapi.ObjectAPI to
// NewWithService.
//
// Example usage:
//
//	client, err := object.New(
//	    object.WithRootURL("https://tc.example.com"),
//	    object.WithHTTPClient(authenticatedClient),
//	)
//	if err != nil {
//	    return err
//	}
//
//	result, err := client.UploadBytes(ctx, "proj-1", "greeting.txt", "text/plain", []byte("hello"))
//	if err != nil {
//	    return err
//	}
package object
