package constant

type contextKey string

// UserIDKey carries the authenticated user id from the auth middleware to
// the handler. Handlers read it once and pass the id to services as an
// explicit argument.
const UserIDKey contextKey = "user_id"
