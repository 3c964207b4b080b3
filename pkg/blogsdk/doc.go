/*
Package blogsdk provides a Go client for the Ngx Blog HTTP API.

# SDKClient vs Session

  - SDKClient: unauthenticated operations (register, login, password reset,
    health checks) and the entry point for creating a Session.
  - Session: operations that need a bearer token (profile, documents,
    uploads).

	client := blogsdk.NewSDKClient("http://localhost:3000")

	user, err := client.Register(ctx, blogsdk.RegisterRequest{
		Email:    "ada@example.com",
		Password: "Correct-Horse-9!",
		FullName: "Ada Lovelace",
	})

	session, err := client.Login(ctx, "ada@example.com", "Correct-Horse-9!")

	articles, err := session.ArticlesByAuthor(ctx)

Session tokens are valid for sixty days and are never refreshed; log in
again once a request fails with a 401.

# Error Handling

Any non-success status is returned as an *APIError carrying the status
code and the field-keyed error body:

	var apiErr *blogsdk.APIError
	if errors.As(err, &apiErr) {
		fmt.Println(apiErr.StatusCode, apiErr.Errors["email"])
	}

# Thread Safety

SDKClient and Session are safe for concurrent use.
*/
package blogsdk
