package linear

// Service exposes Linear's entities as typed operations. Every operation is
// a single or double round trip: an optional batched resolution pass, then
// the query or mutation itself.
type Service struct {
	client *Client
	res    *Resolver
}

// NewService creates a service backed by the given client.
func NewService(client *Client) *Service {
	return &Service{client: client, res: NewResolver(client)}
}

// Resolver exposes the service's identifier resolver.
func (s *Service) Resolver() *Resolver {
	return s.res
}

// defaultPageSize is the page size used for all paginated listings.
const defaultPageSize = 50

// pageSize clamps a user-supplied limit to one API page.
func pageSize(limit int) int {
	if limit > 0 && limit < defaultPageSize {
		return limit
	}
	return defaultPageSize
}
