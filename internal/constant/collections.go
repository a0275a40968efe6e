package constant

// Collection names in the document store. Each entity maps to the lowercase
// singular of its type.
const (
	CollectionUser    = "user"
	CollectionContent = "content"
	CollectionSession = "session"
)

// AnonHandle is the singleton anonymous identity credited for every session.
const AnonHandle = "anon"
