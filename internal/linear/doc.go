// Package linear talks to the Linear GraphQL API and exposes the
// entity operations behind the linctl command tree.
//
// The package is layered: Client sends raw GraphQL requests, Resolver
// turns human references (team keys, project names, issue identifiers
// like "ABC-123", label names, user emails) into opaque API IDs, and
// Service combines the two into list/get/create/update/delete
// operations that return the flat output types in types.go.
//
// Example usage:
//
//	client := linear.NewClient(apiKey)
//	svc := linear.NewService(client)
//
//	issue, err := svc.GetIssue(ctx, "PROJ-123")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Issue: %s - %s\n", issue.Identifier, issue.Title)
package linear
