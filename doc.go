// Package thoughtforge is the Go client SDK for the ThoughtForge AI API.
//
// A session is created from a .params model specification and driven against
// the remote server: the SDK initialises a server-side session, then
// alternates between asking the user's [Environment] for sensor readings and
// delivering the server's next motor actions, until the environment fails,
// the context is cancelled, or [Session.Stop] is called.
//
// Configuration (API key, host, port) is read once from the process
// environment (THOUGHTFORGE_API_KEY, THOUGHTFORGE_HOST, THOUGHTFORGE_PORT),
// optionally pre-populated from a local .env file. A missing API key
// surfaces as [ErrMissingCredential] before any request is made.
//
//	session, err := thoughtforge.New("cartpole.params")
//	if err != nil { ... }
//	err = session.Run(ctx, env)
package thoughtforge
