package cli

import (
	"context"
	"flag"
	"fmt"

	expander "github.com/tphakala/go-expander"
)

// listFlags parses the shared command-line surface of the listing commands:
// an optional -stream flag followed by positional arguments.
func (a *App) listFlags(name string, args []string) (*flag.FlagSet, *bool, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	stream := fs.Bool("stream", true, "print each page of results as it is retrieved")
	err := fs.Parse(args)
	return fs, stream, err
}

// RunAuth exchanges a bearer credential for an ID token and prints it.
func (a *App) RunAuth(ctx context.Context, args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(a.Stderr, "One arg required; found 0")
		return 1
	}

	client, err := a.newClient(args[0])
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintln(a.Stdout, "Calling /api/v1/idtoken endpoint...")
	token, err := client.Authenticate(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.Stdout, "Successfully Authenticated")
	fmt.Fprintln(a.Stdout, token)

	return 0
}

// RunCloudAssets lists every cloud asset the credential can see.
func (a *App) RunCloudAssets(ctx context.Context, args []string) int {
	fs, stream, err := a.listFlags("list-cloud-assets", args)
	if err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(a.Stderr, "One arg required; found 0")
		return 1
	}

	client, err := a.newClient(fs.Arg(0))
	if err != nil {
		return a.fail(err)
	}
	if err := a.authenticate(ctx, client); err != nil {
		return a.fail(err)
	}

	_, err = a.paginate(listSpec{
		endpoint:  client.EndpointURL(expander.CloudAssetsPath),
		noun:      "Cloud Assets",
		totalNoun: "Assets",
		stream:    *stream,
		pages:     client.CloudAssets.Pages(ctx, nil),
	})
	if err != nil {
		return a.fail(err)
	}
	return 0
}

// RunIPRanges lists every on-prem IP range the credential can see.
func (a *App) RunIPRanges(ctx context.Context, args []string) int {
	fs, stream, err := a.listFlags("list-assets", args)
	if err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(a.Stderr, "One arg required; found 0")
		return 1
	}

	client, err := a.newClient(fs.Arg(0))
	if err != nil {
		return a.fail(err)
	}
	if err := a.authenticate(ctx, client); err != nil {
		return a.fail(err)
	}

	_, err = a.paginate(listSpec{
		endpoint:  client.EndpointURL(expander.IPRangesPath),
		noun:      "Assets",
		totalNoun: "Assets",
		stream:    *stream,
		pages:     client.IPRanges.Pages(ctx, nil),
	})
	if err != nil {
		return a.fail(err)
	}
	return 0
}

// RunExposures lists every exposure the credential can see.
func (a *App) RunExposures(ctx context.Context, args []string) int {
	fs, stream, err := a.listFlags("list-exposures", args)
	if err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(a.Stderr, "One arg required; found 0")
		return 1
	}

	client, err := a.newClient(fs.Arg(0))
	if err != nil {
		return a.fail(err)
	}
	if err := a.authenticate(ctx, client); err != nil {
		return a.fail(err)
	}

	_, err = a.paginate(listSpec{
		endpoint:  "v2/exposures/ip-ports",
		noun:      "Exposures",
		totalNoun: "Exposures",
		stream:    *stream,
		pages:     client.Exposures.Pages(ctx, nil),
	})
	if err != nil {
		return a.fail(err)
	}
	return 0
}

// RunEvents lists every event in a date window. Arguments: start date, end
// date (YYYY-MM-DD) and the bearer credential. The window is validated before
// any network call, authentication included.
func (a *App) RunEvents(ctx context.Context, args []string) int {
	fs, stream, err := a.listFlags("list-events", args)
	if err != nil {
		return 2
	}
	if fs.NArg() < 3 {
		fmt.Fprintf(a.Stderr, "Three args required; found %d\n", fs.NArg())
		return 1
	}
	startDate, endDate, bearerToken := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	if err := expander.ValidateDateRange(startDate, endDate); err != nil {
		return a.fail(err)
	}

	client, err := a.newClient(bearerToken)
	if err != nil {
		return a.fail(err)
	}
	if err := a.authenticate(ctx, client); err != nil {
		return a.fail(err)
	}

	_, err = a.paginate(listSpec{
		endpoint:  client.EndpointURL(expander.EventsPath),
		noun:      "Events",
		totalNoun: "Events",
		stream:    *stream,
		pages:     client.Events.Pages(ctx, startDate, endDate, nil),
	})
	if err != nil {
		return a.fail(err)
	}
	return 0
}
