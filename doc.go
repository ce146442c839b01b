// Package expander provides a native Go client for the Expanse Expander
// REST API.
//
// # Features
//
//   - Service-based architecture covering the cloud assets, on-prem IP range,
//     exposure and event collections
//   - Cursor-following pagination exposed as Go 1.23+ iterators
//   - Typed errors for precise error handling
//   - Functional options for flexible configuration
//
// # Quick Start
//
//	client, err := expander.NewClient(
//	    expander.WithBearerToken(bearerToken),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Exchange the bearer credential for a short-lived ID token.
//	if _, err := client.Authenticate(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Iterate all cloud assets matching a filter.
//	filter := &expander.CloudAssetFilter{
//	    Provider: expander.String("Amazon Web Services"),
//	}
//
//	for asset, err := range client.CloudAssets.List(ctx, filter) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(string(asset))
//	}
//
// # Pagination
//
// Every collection service follows the server-supplied pagination cursor
// until it is exhausted:
//
//	// Iterate over individual records across all pages.
//	for record, err := range client.Exposures.List(ctx, nil) {
//	    // ...
//	}
//
//	// Collect all records into a slice.
//	records, err := expander.Collect(client.Exposures.List(ctx, nil))
//
//	// Or page manually.
//	page, err := client.Exposures.ListPage(ctx, nil)
//	for page != nil {
//	    page, err = client.Exposures.NextPage(ctx, page)
//	}
//
// # Error Handling
//
// Failures carry distinct types that can be inspected with errors.As:
//
//	_, err := client.Authenticate(ctx)
//	if err != nil {
//	    var authErr *expander.AuthError
//	    if errors.As(err, &authErr) {
//	        // The API rejected the bearer credential.
//	    }
//	}
package expander
